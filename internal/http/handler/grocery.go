package handler

import (
	"errors"
	"fmt"
	"grocery/internal/core"
	"grocery/internal/http/handler/middleware"
	"grocery/internal/http/payload"
	"grocery/internal/http/view"
	"grocery/internal/session"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const (
	pathLogin          = "/"
	pathRegister       = "/registeration"
	pathUserDashboard  = "/user_dashboard"
	pathAdminDashboard = "/admin_dashboard"
	pathCategoryAdd    = "/category/add"
	pathProductAdd     = "/product/add"
)

type GroceryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	grocer           GroceryService
	sessions         SessionSaver
	pages            PageRenderer
}

func NewGroceryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, groceryService GroceryService, sessions SessionSaver, pages PageRenderer) *GroceryHandler {
	return &GroceryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		grocer:           groceryService,
		sessions:         sessions,
		pages:            pages,
	}
}

func (h *GroceryHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Login, nil, nil)
}

func (h *GroceryHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.LoginRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &payload); err != nil {
		h.redirect(w, r, pathLogin, validationNotice(err))
		return
	}

	user, err := h.grocer.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			h.logs.Infow("login rejected",
				"reason", err,
				"username", payload.Username,
				"handler", Login,
				"request_id", requestId)
			h.redirect(w, r, pathLogin, noticeBadCredentials)
			return
		}
		h.fail(w, r, Login, "authentication failed", err)
		return
	}

	h.session(r).Start(user.ID)
	h.logs.Infow("user logged in",
		"userId", user.ID,
		"handler", Login,
		"request_id", requestId)

	h.redirect(w, r, pathUserDashboard)
}

func (h *GroceryHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Register, nil, nil)
}

func (h *GroceryHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var payload payload.RegisterRequest
	if err := h.requestValidator.DecodeAndValidateForm(r, &payload); err != nil {
		h.redirect(w, r, pathRegister, validationNotice(err))
		return
	}

	_, err := h.grocer.Register(r.Context(), payload.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrDuplicateUsername) {
			h.redirect(w, r, pathRegister, noticeDuplicateUsername)
			return
		}
		h.fail(w, r, Register, "registration failed", err)
		return
	}

	h.redirect(w, r, pathLogin, noticeRegistered)
}

// HandleLogout ends the session. It is safe to call without being logged in.
func (h *GroceryHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.session(r).End()
	h.redirect(w, r, pathLogin)
}

func (h *GroceryHandler) HandleUserDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r, UserDashboard)
	if !ok {
		return
	}

	if user.IsAdmin {
		h.redirect(w, r, pathAdminDashboard)
		return
	}

	categories, err := h.grocer.Categories(r.Context())
	if err != nil {
		h.fail(w, r, UserDashboard, "failed to get categories", err)
		return
	}

	h.render(w, r, view.UserDashboard, &user, categories)
}

func (h *GroceryHandler) HandleUserCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r, UserCart)
	if !ok {
		return
	}

	h.render(w, r, view.UserCart, &user, nil)
}

func (h *GroceryHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r, Orders)
	if !ok {
		return
	}

	h.render(w, r, view.Orders, &user, nil)
}

func (h *GroceryHandler) HandleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r, AdminDashboard)
	if !ok {
		return
	}

	categories, err := h.grocer.Categories(r.Context())
	if err != nil {
		h.fail(w, r, AdminDashboard, "failed to get categories", err)
		return
	}

	h.render(w, r, view.AdminDashboard, &user, categories)
}

// session returns the session loaded by the session middleware. Without it
// the request is served with a throwaway anonymous session.
func (h *GroceryHandler) session(r *http.Request) *session.Session {
	if s, ok := session.FromContext(r.Context()); ok {
		return s
	}
	return session.New()
}

// currentUser loads the user bound to the session. A session pointing at a
// removed account is ended and sent back to the login page.
func (h *GroceryHandler) currentUser(w http.ResponseWriter, r *http.Request, handlerName string) (core.UserRecord, bool) {
	s := h.session(r)
	userID, ok := s.CurrentUserID()
	if !ok {
		h.redirect(w, r, pathLogin, middleware.NoticeLoginRequired)
		return core.UserRecord{}, false
	}

	user, err := h.grocer.UserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			s.End()
			h.redirect(w, r, pathLogin, middleware.NoticeLoginRequired)
			return core.UserRecord{}, false
		}
		h.fail(w, r, handlerName, "failed to get session user", err)
		return core.UserRecord{}, false
	}

	return user, true
}

// redirect queues the notices, writes the session back and redirects.
func (h *GroceryHandler) redirect(w http.ResponseWriter, r *http.Request, target string, notices ...string) {
	s := h.session(r)
	for _, notice := range notices {
		s.AddFlash(notice)
	}

	if err := h.sessions.Save(r.Context(), w, s); err != nil {
		h.fail(w, r, target, "failed to save session", err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// render pops the pending notices into the page, writes the session back and
// renders the page.
func (h *GroceryHandler) render(w http.ResponseWriter, r *http.Request, name string, user *core.UserRecord, data any) {
	s := h.session(r)
	page := view.Page{
		Flashes: s.Flashes(),
		User:    user,
		Data:    data,
	}

	if err := h.sessions.Save(r.Context(), w, s); err != nil {
		h.fail(w, r, name, "failed to save session", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.Render(w, name, page); err != nil {
		h.fail(w, r, name, "failed to render page", err)
	}
}

func (h *GroceryHandler) fail(w http.ResponseWriter, r *http.Request, handlerName, msg string, err error) {
	http.Error(w, oopsErr, http.StatusInternalServerError)
	h.logs.Errorw(msg,
		"error", err,
		"handler", handlerName,
		"request_id", middleware.RequestIDFrom(r.Context()))
}

func validationNotice(err error) string {
	return fmt.Sprintf(validationNoticeTemplate, payload.Message(err))
}

// pathID parses the {id} wildcard. Malformed ids are reported as missing.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
