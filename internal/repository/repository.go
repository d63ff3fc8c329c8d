package repository

import (
	"context"
	"errors"
	"fmt"
	"grocery/internal/db"
)

var (
	ErrUserNotFound     error = errors.New("user not found")
	ErrNotFound         error = errors.New("record not found")
	ErrDuplicate        error = errors.New("record already exists")
	ErrInUse            error = errors.New("record is still referenced")
	ErrInvalidReference error = errors.New("referenced record does not exist")
)

const productsByCategoryQuery = `
SELECT p.id, p.name, p.price_per_unit, p.quantity, p.category_id, p.unit_id, u.name AS unit_name
FROM products p
JOIN units u ON u.id = p.unit_id
WHERE p.category_id = ?
ORDER BY p.name`

// DefaultUnits are seeded into an empty units table. Products default to unit 1.
var DefaultUnits = []Unit{
	{ID: 1, Name: "piece"},
	{ID: 2, Name: "kg"},
	{ID: 3, Name: "litre"},
	{ID: 4, Name: "dozen"},
}

type GroceryRepository struct {
	db Storage
}

func NewGroceryRepository(db Storage) *GroceryRepository {
	return &GroceryRepository{
		db: db,
	}
}

func (r *GroceryRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(
		&User{},
		&Unit{},
		&Category{},
		&Product{},
		&Order{},
		&OrderDetail{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	units := make([]Unit, len(DefaultUnits))
	copy(units, DefaultUnits)
	err = r.db.SeedTable(ctx, &units)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *GroceryRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("create user %q: %w", user.Username, ErrDuplicate)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *GroceryRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *GroceryRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	return r.getUserBy(ctx, "id", userID)
}

func (r *GroceryRepository) GetAdmin(ctx context.Context) (User, error) {
	return r.getUserBy(ctx, "is_admin", true)
}

func (r *GroceryRepository) getUserBy(ctx context.Context, column string, value any) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *GroceryRepository) GetCategories(ctx context.Context) ([]Category, error) {
	categories := []Category{}
	err := r.db.GetAll(ctx, "name", &categories)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	return categories, nil
}

func (r *GroceryRepository) GetUnits(ctx context.Context) ([]Unit, error) {
	units := []Unit{}
	err := r.db.GetAll(ctx, "id", &units)
	if err != nil {
		return nil, fmt.Errorf("get units: %w", err)
	}

	return units, nil
}

func (r *GroceryRepository) GetCategory(ctx context.Context, categoryID uint) (Category, error) {
	var category Category

	err := r.db.GetOneBy(ctx, "id", categoryID, &category)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Category{}, fmt.Errorf("get category %d: %w", categoryID, ErrNotFound)
		}
		return Category{}, fmt.Errorf("get category %d: %w", categoryID, err)
	}

	return category, nil
}

func (r *GroceryRepository) CreateCategory(ctx context.Context, category *Category) error {
	err := r.db.Create(ctx, category)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("create category %q: %w", category.Name, ErrDuplicate)
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

func (r *GroceryRepository) RenameCategory(ctx context.Context, categoryID uint, name string) error {
	affected, err := r.db.UpdateBy(ctx, &Category{}, "id", categoryID, map[string]any{"name": name})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("rename category %d: %w", categoryID, ErrDuplicate)
		}
		return fmt.Errorf("rename category %d: %w", categoryID, err)
	}

	if affected == 0 {
		return fmt.Errorf("rename category %d: %w", categoryID, ErrNotFound)
	}

	return nil
}

func (r *GroceryRepository) DeleteCategory(ctx context.Context, categoryID uint) error {
	affected, err := r.db.DeleteBy(ctx, &Category{}, "id", categoryID)
	if err != nil {
		if errors.Is(err, db.ErrForeignKey) {
			return fmt.Errorf("delete category %d: %w", categoryID, ErrInUse)
		}
		return fmt.Errorf("delete category %d: %w", categoryID, err)
	}

	if affected == 0 {
		return fmt.Errorf("delete category %d: %w", categoryID, ErrNotFound)
	}

	return nil
}

func (r *GroceryRepository) CountCategoryProducts(ctx context.Context, categoryID uint) (int64, error) {
	count, err := r.db.CountBy(ctx, &Product{}, "category_id", categoryID)
	if err != nil {
		return 0, fmt.Errorf("count products of category %d: %w", categoryID, err)
	}

	return count, nil
}

func (r *GroceryRepository) GetCategoryProducts(ctx context.Context, categoryID uint) ([]ProductListing, error) {
	products := []ProductListing{}
	err := r.db.Query(ctx, &products, productsByCategoryQuery, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get products of category %d: %w", categoryID, err)
	}

	return products, nil
}

func (r *GroceryRepository) CreateProduct(ctx context.Context, product *Product) error {
	err := r.db.Create(ctx, product)
	if err != nil {
		if errors.Is(err, db.ErrForeignKey) {
			return fmt.Errorf("create product %q: %w", product.Name, ErrInvalidReference)
		}
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *GroceryRepository) GetProduct(ctx context.Context, productID uint) (Product, error) {
	var product Product

	err := r.db.GetOneBy(ctx, "id", productID, &product)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Product{}, fmt.Errorf("get product %d: %w", productID, ErrNotFound)
		}
		return Product{}, fmt.Errorf("get product %d: %w", productID, err)
	}

	return product, nil
}

func (r *GroceryRepository) DeleteProduct(ctx context.Context, productID uint) error {
	affected, err := r.db.DeleteBy(ctx, &Product{}, "id", productID)
	if err != nil {
		if errors.Is(err, db.ErrForeignKey) {
			return fmt.Errorf("delete product %d: %w", productID, ErrInUse)
		}
		return fmt.Errorf("delete product %d: %w", productID, err)
	}

	if affected == 0 {
		return fmt.Errorf("delete product %d: %w", productID, ErrNotFound)
	}

	return nil
}
