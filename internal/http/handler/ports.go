package handler

import (
	"context"
	"grocery/internal/core"
	"grocery/internal/http/payload"
	"grocery/internal/http/view"
	"grocery/internal/session"
	"io"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, object payload.FormPayload) error
}

//counterfeiter:generate -o fake -fake-name GroceryService . GroceryService
type GroceryService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.UserRecord, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	UserByID(ctx context.Context, userID string) (core.UserRecord, error)
	Units(ctx context.Context) ([]core.UnitRecord, error)
	Categories(ctx context.Context) ([]core.CategoryRecord, error)
	Category(ctx context.Context, categoryID uint) (core.CategoryRecord, error)
	CategoryDetails(ctx context.Context, categoryID uint) (core.CategoryDetails, error)
	AddCategory(ctx context.Context, name string) (core.CategoryRecord, error)
	EditCategory(ctx context.Context, categoryID uint, name string) error
	DeleteCategory(ctx context.Context, categoryID uint) error
	AddProduct(ctx context.Context, msg core.ProductMessage) (core.ProductRecord, error)
	EditProduct(ctx context.Context, productID uint, msg core.ProductMessage) error
	Product(ctx context.Context, productID uint) (core.ProductRecord, error)
	DeleteProduct(ctx context.Context, productID uint) error
}

//counterfeiter:generate -o fake -fake-name SessionSaver . SessionSaver
type SessionSaver interface {
	Save(ctx context.Context, w http.ResponseWriter, s *session.Session) error
}

type PageRenderer interface {
	Render(w io.Writer, name string, page view.Page) error
}

// Guard wraps handlers with the access checks a route declares.
type Guard interface {
	AuthRequired(next http.Handler) http.Handler
	AdminRequired(next http.Handler) http.Handler
}
