package handler

import "net/http"

// Access is the level of authorization a route demands.
type Access int

const (
	Public Access = iota
	Authenticated
	Admin
)

var (
	LoginPage         = "GET /{$}"
	Login             = "POST /{$}"
	RegisterPage      = "GET /registeration"
	Register          = "POST /registeration"
	UserDashboard     = "GET /user_dashboard"
	UserCart          = "GET /user_cart"
	Orders            = "GET /orders"
	AdminDashboard    = "GET /admin_dashboard"
	Logout            = "GET /logout"
	CategoryAddPage   = "GET /category/add"
	CategoryAdd       = "POST /category/add"
	CategoryShow      = "GET /category/{id}/show"
	CategoryEditPage  = "GET /category/{id}/edit"
	CategoryEdit      = "POST /category/{id}/edit"
	CategoryDelete    = "GET /category/{id}/delete"
	ProductAddPage    = "GET /product/add"
	ProductAdd        = "POST /product/add"
	ProductEditPage   = "GET /product/{id}/edit"
	ProductEdit       = "POST /product/{id}/edit"
	ProductDeletePage = "GET /product/{id}/delete"
	ProductDelete     = "POST /product/{id}/delete"
)

type Route struct {
	Pattern string
	Access  Access
	Handler http.HandlerFunc
}

// Routes lists every endpoint of the store together with its access level.
func (h *GroceryHandler) Routes() []Route {
	return []Route{
		{Pattern: LoginPage, Access: Public, Handler: h.HandleLoginPage},
		{Pattern: Login, Access: Public, Handler: h.HandleLogin},
		{Pattern: RegisterPage, Access: Public, Handler: h.HandleRegisterPage},
		{Pattern: Register, Access: Public, Handler: h.HandleRegister},
		{Pattern: Logout, Access: Public, Handler: h.HandleLogout},
		{Pattern: UserDashboard, Access: Authenticated, Handler: h.HandleUserDashboard},
		{Pattern: UserCart, Access: Authenticated, Handler: h.HandleUserCart},
		{Pattern: Orders, Access: Authenticated, Handler: h.HandleOrders},
		{Pattern: AdminDashboard, Access: Admin, Handler: h.HandleAdminDashboard},
		{Pattern: CategoryAddPage, Access: Admin, Handler: h.HandleCategoryAddPage},
		{Pattern: CategoryAdd, Access: Admin, Handler: h.HandleCategoryAdd},
		{Pattern: CategoryShow, Access: Admin, Handler: h.HandleCategoryShow},
		{Pattern: CategoryEditPage, Access: Admin, Handler: h.HandleCategoryEditPage},
		{Pattern: CategoryEdit, Access: Admin, Handler: h.HandleCategoryEdit},
		{Pattern: CategoryDelete, Access: Admin, Handler: h.HandleCategoryDelete},
		{Pattern: ProductAddPage, Access: Admin, Handler: h.HandleProductAddPage},
		{Pattern: ProductAdd, Access: Admin, Handler: h.HandleProductAdd},
		{Pattern: ProductEditPage, Access: Admin, Handler: h.HandleProductEdit},
		{Pattern: ProductEdit, Access: Admin, Handler: h.HandleProductEdit},
		{Pattern: ProductDeletePage, Access: Admin, Handler: h.HandleProductDeletePage},
		{Pattern: ProductDelete, Access: Admin, Handler: h.HandleProductDelete},
	}
}

// Mount registers routes on mux, wrapping each handler with the guard its
// access level calls for.
func Mount(mux *http.ServeMux, routes []Route, guard Guard) {
	for _, route := range routes {
		var hdlr http.Handler = route.Handler
		switch route.Access {
		case Authenticated:
			hdlr = guard.AuthRequired(hdlr)
		case Admin:
			hdlr = guard.AdminRequired(hdlr)
		}
		mux.Handle(route.Pattern, hdlr)
	}
}
