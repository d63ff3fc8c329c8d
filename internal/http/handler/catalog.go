package handler

import (
	"errors"
	"fmt"
	"grocery/internal/core"
	"grocery/internal/http/handler/middleware"
	"grocery/internal/http/payload"
	"grocery/internal/http/view"
	"net/http"
	"strconv"
)

type productForm struct {
	Selected   uint
	Categories []core.CategoryRecord
	Units      []core.UnitRecord
}

func (h *GroceryHandler) HandleCategoryAddPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r, CategoryAddPage)
	if !ok {
		return
	}

	h.render(w, r, view.CategoryAdd, &user, nil)
}

func (h *GroceryHandler) HandleCategoryAdd(w http.ResponseWriter, r *http.Request) {
	var payload payload.CategoryRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &payload); err != nil {
		h.redirect(w, r, pathCategoryAdd, validationNotice(err))
		return
	}

	category, err := h.grocer.AddCategory(r.Context(), payload.Name)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateCategory) {
			h.redirect(w, r, pathCategoryAdd, noticeDuplicateCategory)
			return
		}
		h.fail(w, r, CategoryAdd, "failed to add category", err)
		return
	}

	h.logs.Infow("category added",
		"categoryId", category.ID,
		"handler", CategoryAdd,
		"request_id", middleware.RequestIDFrom(r.Context()))

	h.redirect(w, r, pathAdminDashboard, noticeCategoryAdded)
}

func (h *GroceryHandler) HandleCategoryShow(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r)
	if !ok {
		h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
		return
	}

	user, ok := h.currentUser(w, r, CategoryShow)
	if !ok {
		return
	}

	details, err := h.grocer.CategoryDetails(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, core.ErrCategoryNotFound) {
			h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
			return
		}
		h.fail(w, r, CategoryShow, "failed to get category", err)
		return
	}

	h.render(w, r, view.CategoryShow, &user, details)
}

func (h *GroceryHandler) HandleCategoryEditPage(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r)
	if !ok {
		h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
		return
	}

	user, ok := h.currentUser(w, r, CategoryEditPage)
	if !ok {
		return
	}

	category, err := h.grocer.Category(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, core.ErrCategoryNotFound) {
			h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
			return
		}
		h.fail(w, r, CategoryEditPage, "failed to get category", err)
		return
	}

	h.render(w, r, view.CategoryEdit, &user, category)
}

func (h *GroceryHandler) HandleCategoryEdit(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r)
	if !ok {
		h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
		return
	}

	var payload payload.CategoryRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &payload); err != nil {
		h.redirect(w, r, fmt.Sprintf("/category/%d/edit", categoryID), validationNotice(err))
		return
	}

	err := h.grocer.EditCategory(r.Context(), categoryID, payload.Name)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrCategoryNotFound):
			h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
		case errors.Is(err, core.ErrDuplicateCategory):
			h.redirect(w, r, fmt.Sprintf("/category/%d/edit", categoryID), noticeDuplicateCategory)
		default:
			h.fail(w, r, CategoryEdit, "failed to edit category", err)
		}
		return
	}

	h.redirect(w, r, pathAdminDashboard, noticeCategoryEdited)
}

func (h *GroceryHandler) HandleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r)
	if !ok {
		h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
		return
	}

	err := h.grocer.DeleteCategory(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrCategoryNotFound):
			h.redirect(w, r, pathAdminDashboard, noticeCategoryNotFound)
		case errors.Is(err, core.ErrCategoryNotEmpty):
			h.redirect(w, r, pathAdminDashboard, noticeCategoryNotEmpty)
		default:
			h.fail(w, r, CategoryDelete, "failed to delete category", err)
		}
		return
	}

	h.redirect(w, r, pathAdminDashboard, noticeCategoryDeleted)
}

// HandleProductAddPage renders the product form. A valid ?cat_id= preselects
// that category.
func (h *GroceryHandler) HandleProductAddPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r, ProductAddPage)
	if !ok {
		return
	}

	categories, err := h.grocer.Categories(r.Context())
	if err != nil {
		h.fail(w, r, ProductAddPage, "failed to get categories", err)
		return
	}

	units, err := h.grocer.Units(r.Context())
	if err != nil {
		h.fail(w, r, ProductAddPage, "failed to get units", err)
		return
	}

	form := productForm{
		Categories: categories,
		Units:      units,
	}
	if catID, err := strconv.ParseUint(r.URL.Query().Get("cat_id"), 10, 32); err == nil {
		for _, c := range categories {
			if c.ID == uint(catID) {
				form.Selected = c.ID
			}
		}
	}

	h.render(w, r, view.ProductAdd, &user, form)
}

func (h *GroceryHandler) HandleProductAdd(w http.ResponseWriter, r *http.Request) {
	var payload payload.ProductRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &payload); err != nil {
		h.redirect(w, r, productAddPath(payload.Category), validationNotice(err))
		return
	}

	product, err := h.grocer.AddProduct(r.Context(), payload.ToMessage())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrCategoryNotFound):
			h.redirect(w, r, pathProductAdd, noticeCategoryNotFound)
		case errors.Is(err, core.ErrUnitNotFound):
			h.redirect(w, r, productAddPath(payload.Category), noticeUnitNotFound)
		default:
			h.fail(w, r, ProductAdd, "failed to add product", err)
		}
		return
	}

	h.redirect(w, r, fmt.Sprintf("/category/%d/show", product.CategoryID), noticeProductAdded)
}

// HandleProductEdit answers 501 until product editing is supported.
func (h *GroceryHandler) HandleProductEdit(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r)
	if !ok {
		h.redirect(w, r, pathAdminDashboard, noticeProductNotFound)
		return
	}

	err := h.grocer.EditProduct(r.Context(), productID, core.ProductMessage{})
	if errors.Is(err, core.ErrNotImplemented) {
		http.Error(w, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
		return
	}
	if err != nil {
		h.fail(w, r, ProductEdit, "failed to edit product", err)
		return
	}

	h.redirect(w, r, pathAdminDashboard)
}

func (h *GroceryHandler) HandleProductDeletePage(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r)
	if !ok {
		h.redirect(w, r, pathAdminDashboard, noticeProductNotFound)
		return
	}

	user, ok := h.currentUser(w, r, ProductDeletePage)
	if !ok {
		return
	}

	product, err := h.grocer.Product(r.Context(), productID)
	if err != nil {
		if errors.Is(err, core.ErrProductNotFound) {
			h.redirect(w, r, pathAdminDashboard, noticeProductNotFound)
			return
		}
		h.fail(w, r, ProductDeletePage, "failed to get product", err)
		return
	}

	h.render(w, r, view.ProductDelete, &user, product)
}

func (h *GroceryHandler) HandleProductDelete(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r)
	if !ok {
		h.redirect(w, r, pathAdminDashboard, noticeProductNotFound)
		return
	}

	err := h.grocer.DeleteProduct(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrProductNotFound):
			h.redirect(w, r, pathAdminDashboard, noticeProductNotFound)
		case errors.Is(err, core.ErrProductInUse):
			h.redirect(w, r, pathAdminDashboard, noticeProductInUse)
		default:
			h.fail(w, r, ProductDelete, "failed to delete product", err)
		}
		return
	}

	h.redirect(w, r, pathAdminDashboard, noticeProductDeleted)
}

func productAddPath(category string) string {
	if _, err := strconv.ParseUint(category, 10, 32); err != nil {
		return pathProductAdd
	}
	return pathProductAdd + "?cat_id=" + category
}
