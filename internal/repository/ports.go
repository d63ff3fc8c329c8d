package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SeedTable(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, orderBy string, entity any) error
	UpdateBy(ctx context.Context, model any, column string, value any, changes map[string]any) (int64, error)
	DeleteBy(ctx context.Context, model any, column string, value any) (int64, error)
	CountBy(ctx context.Context, model any, column string, value any) (int64, error)
	Query(ctx context.Context, dest any, query string, args ...any) error
}
