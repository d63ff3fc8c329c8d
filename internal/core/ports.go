package core

import (
	"context"
	"grocery/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, userID string) (repository.User, error)
	GetAdmin(ctx context.Context) (repository.User, error)
	GetUnits(ctx context.Context) ([]repository.Unit, error)
	GetCategories(ctx context.Context) ([]repository.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (repository.Category, error)
	CreateCategory(ctx context.Context, category *repository.Category) error
	RenameCategory(ctx context.Context, categoryID uint, name string) error
	DeleteCategory(ctx context.Context, categoryID uint) error
	CountCategoryProducts(ctx context.Context, categoryID uint) (int64, error)
	GetCategoryProducts(ctx context.Context, categoryID uint) ([]repository.ProductListing, error)
	CreateProduct(ctx context.Context, product *repository.Product) error
	GetProduct(ctx context.Context, productID uint) (repository.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error
}
