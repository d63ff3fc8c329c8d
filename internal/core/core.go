package core

import (
	"context"
	"errors"
	"fmt"
	"grocery/internal/repository"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrDuplicateUsername error = errors.New("username already exists")
	ErrCategoryNotFound  error = errors.New("category does not exist")
	ErrDuplicateCategory error = errors.New("category already exists")
	ErrCategoryNotEmpty  error = errors.New("category still has products")
	ErrProductNotFound   error = errors.New("product does not exist")
	ErrProductInUse      error = errors.New("product is part of an order")
	ErrUnitNotFound      error = errors.New("unit does not exist")
	ErrNotImplemented    error = errors.New("not implemented")
)

// Grocer is the credential store and catalog service of the grocery store.
type Grocer struct {
	logs     *zap.SugaredLogger
	repo     Repository
	hashCost int
}

// NewGrocer is a constructor function for the Grocer type.
func NewGrocer(logger *zap.SugaredLogger, repo Repository) *Grocer {
	return &Grocer{
		logs:     logger,
		repo:     repo,
		hashCost: bcrypt.DefaultCost,
	}
}

// CreateUser hashes the password and stores a new user. It fails with
// ErrDuplicateUsername when the username is already registered.
func (g *Grocer) CreateUser(ctx context.Context, msg RegisterMessage, isAdmin bool) (UserRecord, error) {
	username := strings.TrimSpace(msg.Username)
	name := strings.TrimSpace(msg.Name)
	if name == "" {
		name = username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), g.hashCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}

	if err = g.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return UserRecord{}, ErrDuplicateUsername
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	g.logs.Infow("user created", "userId", user.ID, "username", user.Username, "isAdmin", isAdmin)

	return toUserRecord(user), nil
}

// Register creates a regular, non-admin account.
func (g *Grocer) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	return g.CreateUser(ctx, msg, false)
}

// Authenticate checks the provided username and password against the database.
// A missing user and a wrong password are reported as distinct errors.
func (g *Grocer) Authenticate(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	user, err := g.repo.GetUserByUsername(ctx, strings.TrimSpace(msg.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrIncorrectPassword
	}

	return toUserRecord(user), nil
}

func (g *Grocer) UserByID(ctx context.Context, userID string) (UserRecord, error) {
	user, err := g.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by id: %w", err)
	}

	return toUserRecord(user), nil
}

// EnsureAdmin creates the bootstrap administrator unless an admin already exists.
// It reports whether an account was created.
func (g *Grocer) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, err := g.repo.GetAdmin(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, fmt.Errorf("look up admin: %w", err)
	}

	_, err = g.CreateUser(ctx, RegisterMessage{
		Username: username,
		Name:     username,
		Password: password,
	}, true)
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	return true, nil
}

func (g *Grocer) Units(ctx context.Context) ([]UnitRecord, error) {
	units, err := g.repo.GetUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("get units: %w", err)
	}

	records := make([]UnitRecord, len(units))
	for i, u := range units {
		records[i] = UnitRecord{ID: u.ID, Name: u.Name}
	}

	return records, nil
}

func (g *Grocer) Categories(ctx context.Context) ([]CategoryRecord, error) {
	categories, err := g.repo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	records := make([]CategoryRecord, len(categories))
	for i, c := range categories {
		records[i] = toCategoryRecord(c)
	}

	return records, nil
}

func (g *Grocer) Category(ctx context.Context, categoryID uint) (CategoryRecord, error) {
	category, err := g.repo.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return CategoryRecord{}, ErrCategoryNotFound
		}
		return CategoryRecord{}, fmt.Errorf("get category: %w", err)
	}

	return toCategoryRecord(category), nil
}

// CategoryDetails loads a category and its products.
func (g *Grocer) CategoryDetails(ctx context.Context, categoryID uint) (CategoryDetails, error) {
	category, err := g.Category(ctx, categoryID)
	if err != nil {
		return CategoryDetails{}, err
	}

	listings, err := g.repo.GetCategoryProducts(ctx, categoryID)
	if err != nil {
		return CategoryDetails{}, fmt.Errorf("get category products: %w", err)
	}

	products := make([]ProductRecord, len(listings))
	for i, p := range listings {
		products[i] = ProductRecord{
			ID:           p.ID,
			Name:         p.Name,
			PricePerUnit: p.PricePerUnit,
			Quantity:     p.Quantity,
			CategoryID:   p.CategoryID,
			UnitID:       p.UnitID,
			UnitName:     p.UnitName,
		}
	}

	return CategoryDetails{
		Category: category,
		Products: products,
	}, nil
}

func (g *Grocer) AddCategory(ctx context.Context, name string) (CategoryRecord, error) {
	category := repository.Category{Name: strings.TrimSpace(name)}

	if err := g.repo.CreateCategory(ctx, &category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return CategoryRecord{}, ErrDuplicateCategory
		}
		return CategoryRecord{}, fmt.Errorf("create category: %w", err)
	}

	g.logs.Infow("category added", "categoryId", category.ID, "name", category.Name)

	return toCategoryRecord(category), nil
}

func (g *Grocer) EditCategory(ctx context.Context, categoryID uint, name string) error {
	err := g.repo.RenameCategory(ctx, categoryID, strings.TrimSpace(name))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return ErrDuplicateCategory
		}
		return fmt.Errorf("rename category: %w", err)
	}

	g.logs.Infow("category renamed", "categoryId", categoryID, "name", name)
	return nil
}

// DeleteCategory removes an empty category. Categories that still hold
// products are refused with ErrCategoryNotEmpty.
func (g *Grocer) DeleteCategory(ctx context.Context, categoryID uint) error {
	count, err := g.repo.CountCategoryProducts(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("count category products: %w", err)
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}

	err = g.repo.DeleteCategory(ctx, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, repository.ErrInUse):
			return ErrCategoryNotEmpty
		}
		return fmt.Errorf("delete category: %w", err)
	}

	g.logs.Infow("category deleted", "categoryId", categoryID)
	return nil
}

func (g *Grocer) AddProduct(ctx context.Context, msg ProductMessage) (ProductRecord, error) {
	if _, err := g.Category(ctx, msg.CategoryID); err != nil {
		return ProductRecord{}, err
	}

	unitID := msg.UnitID
	if unitID == 0 {
		unitID = repository.DefaultUnits[0].ID
	} else if err := g.ensureUnit(ctx, unitID); err != nil {
		return ProductRecord{}, err
	}

	product := repository.Product{
		Name:         strings.TrimSpace(msg.Name),
		UnitID:       unitID,
		PricePerUnit: msg.PricePerUnit,
		Quantity:     msg.Quantity,
		CategoryID:   msg.CategoryID,
	}

	if err := g.repo.CreateProduct(ctx, &product); err != nil {
		// the unit was checked above, so the category went away meanwhile
		if errors.Is(err, repository.ErrInvalidReference) {
			return ProductRecord{}, ErrCategoryNotFound
		}
		return ProductRecord{}, fmt.Errorf("create product: %w", err)
	}

	g.logs.Infow("product added", "productId", product.ID, "categoryId", product.CategoryID)

	return toProductRecord(product), nil
}

func (g *Grocer) ensureUnit(ctx context.Context, unitID uint) error {
	units, err := g.repo.GetUnits(ctx)
	if err != nil {
		return fmt.Errorf("get units: %w", err)
	}

	for _, u := range units {
		if u.ID == unitID {
			return nil
		}
	}

	return ErrUnitNotFound
}

// EditProduct is not available yet and always fails with ErrNotImplemented.
func (g *Grocer) EditProduct(ctx context.Context, productID uint, msg ProductMessage) error {
	return fmt.Errorf("edit product %d: %w", productID, ErrNotImplemented)
}

func (g *Grocer) Product(ctx context.Context, productID uint) (ProductRecord, error) {
	product, err := g.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ProductRecord{}, ErrProductNotFound
		}
		return ProductRecord{}, fmt.Errorf("get product: %w", err)
	}

	return toProductRecord(product), nil
}

func (g *Grocer) DeleteProduct(ctx context.Context, productID uint) error {
	err := g.repo.DeleteProduct(ctx, productID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrProductNotFound
		case errors.Is(err, repository.ErrInUse):
			return ErrProductInUse
		}
		return fmt.Errorf("delete product: %w", err)
	}

	g.logs.Infow("product deleted", "productId", productID)
	return nil
}

func toUserRecord(u repository.User) UserRecord {
	return UserRecord{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		IsAdmin:  u.IsAdmin,
	}
}

func toCategoryRecord(c repository.Category) CategoryRecord {
	return CategoryRecord{
		ID:   c.ID,
		Name: c.Name,
	}
}

func toProductRecord(p repository.Product) ProductRecord {
	return ProductRecord{
		ID:           p.ID,
		Name:         p.Name,
		PricePerUnit: p.PricePerUnit,
		Quantity:     p.Quantity,
		CategoryID:   p.CategoryID,
		UnitID:       p.UnitID,
	}
}
