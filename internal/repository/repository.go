package repository

import (
	"context"
	"errors"
	"fmt"
	"usdcdash/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTransferNotFound = errors.New("transfer not found")
)

// OperatorSeed is an operator account provisioned at startup.
type OperatorSeed struct {
	Username     string
	PasswordHash string
}

type DashboardRepository struct {
	db Storage
}

func NewDashboardRepository(db Storage) *DashboardRepository {
	return &DashboardRepository{
		db: db,
	}
}

func (r *DashboardRepository) MigrateTables() error {
	err := r.db.MigrateModels(&Operator{}, &Transfer{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SeedOperators inserts the given operators unless the table already holds some.
func (r *DashboardRepository) SeedOperators(ctx context.Context, seeds []OperatorSeed) error {
	if len(seeds) == 0 {
		return nil
	}

	operators := make([]Operator, 0, len(seeds))
	for _, s := range seeds {
		operators = append(operators, Operator{
			ID:           uuid.NewString(),
			Username:     s.Username,
			PasswordHash: s.PasswordHash,
		})
	}

	if err := r.db.Seed(ctx, &operators); err != nil {
		return fmt.Errorf("seed operators: %w", err)
	}

	return nil
}

func (r *DashboardRepository) GetOperator(ctx context.Context, username string) (Operator, error) {
	var operator Operator

	err := r.db.GetOneBy(ctx, "username", username, &operator)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Operator{}, ErrUserNotFound
		}
		return Operator{}, fmt.Errorf("get operator by username: %w", err)
	}

	return operator, nil
}

func (r *DashboardRepository) CreateTransfer(ctx context.Context, transfer Transfer) error {
	if err := r.db.Create(ctx, &transfer); err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}

	return nil
}

func (r *DashboardRepository) UpdateTransfer(ctx context.Context, transfer Transfer) error {
	if err := r.db.Save(ctx, &transfer); err != nil {
		return fmt.Errorf("update transfer %s: %w", transfer.ID, err)
	}

	return nil
}

func (r *DashboardRepository) GetTransfer(ctx context.Context, id string) (Transfer, error) {
	var transfer Transfer

	err := r.db.GetOneBy(ctx, "id", id, &transfer)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transfer{}, ErrTransferNotFound
		}
		return Transfer{}, fmt.Errorf("get transfer by id: %w", err)
	}

	return transfer, nil
}
