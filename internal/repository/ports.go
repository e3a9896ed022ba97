package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Seed(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	Save(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
}
