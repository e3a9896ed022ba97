package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxIdleTime = 5 * time.Minute
)

// PostgresDB is the gorm-backed store for operators and transfers. Timestamps are
// written in UTC.
type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return &PostgresDB{DB: gormDB}, nil
}

func (p *PostgresDB) MigrateModels(models ...any) error {
	if err := p.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed inserts records, a pointer to a slice, only while their table is empty, so
// operators edited after the first start are left alone.
func (p *PostgresDB) Seed(ctx context.Context, records any) error {
	rv := reflect.ValueOf(records)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("seed records must be a pointer to a slice, got %T", records)
	}
	if rv.Elem().Len() == 0 {
		return nil
	}

	tx := p.DB.WithContext(ctx)

	var existing int64
	model := rv.Elem().Index(0).Interface()
	if err := tx.Model(model).Count(&existing).Error; err != nil {
		return fmt.Errorf("count seeded rows: %w", err)
	}
	if existing > 0 {
		return nil
	}

	if err := tx.Create(records).Error; err != nil {
		return fmt.Errorf("insert seed rows: %w", err)
	}
	return nil
}

func (p *PostgresDB) Create(ctx context.Context, record any) error {
	if err := p.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// Save updates record by primary key, inserting it when no row matched.
func (p *PostgresDB) Save(ctx context.Context, record any) error {
	if err := p.DB.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// GetOneBy loads the first row whose column equals value into entity.
func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	err := p.DB.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		First(entity).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
