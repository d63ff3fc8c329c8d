package middleware

import (
	"errors"
	"grocery/internal/core"
	"grocery/internal/session"
	"net/http"

	"go.uber.org/zap"
)

const (
	oopsErr = "Oops! Something went wrong. Please try again later."

	LoginPath = "/"

	NoticeLoginRequired = "Error: please login first."
	NoticeNotAuthorised = "Error: you are not authorised to access this page."
)

// GuardMiddleware decides whether the session of a request may reach a handler.
type GuardMiddleware struct {
	logs     *zap.SugaredLogger
	sessions SessionSaver
	users    UserFinder
}

func NewGuardMiddleware(logger *zap.SugaredLogger, sessions SessionSaver, users UserFinder) *GuardMiddleware {
	return &GuardMiddleware{
		logs:     logger,
		sessions: sessions,
		users:    users,
	}
}

// AuthRequired lets the request through only when the session is bound to a user.
func (g *GuardMiddleware) AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := sessionOf(r)
		if _, ok := s.CurrentUserID(); !ok {
			g.reject(w, r, s, NoticeLoginRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminRequired re-reads the bound user on every request, so revoked or
// deleted accounts lose access immediately.
func (g *GuardMiddleware) AdminRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := sessionOf(r)
		userID, ok := s.CurrentUserID()
		if !ok {
			g.reject(w, r, s, NoticeLoginRequired)
			return
		}

		user, err := g.users.UserByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, core.ErrUserNotFound) {
				s.End()
				g.reject(w, r, s, NoticeLoginRequired)
				return
			}
			http.Error(w, oopsErr, http.StatusInternalServerError)
			g.logs.Errorw("failed to look up session user",
				"error", err,
				"request_id", RequestIDFrom(r.Context()))
			return
		}

		if !user.IsAdmin {
			g.logs.Infow("non-admin user denied",
				"userId", userID,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()))
			g.reject(w, r, s, NoticeNotAuthorised)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (g *GuardMiddleware) reject(w http.ResponseWriter, r *http.Request, s *session.Session, notice string) {
	s.AddFlash(notice)
	if err := g.sessions.Save(r.Context(), w, s); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		g.logs.Errorw("failed to save session",
			"error", err,
			"request_id", RequestIDFrom(r.Context()))
		return
	}

	http.Redirect(w, r, LoginPath, http.StatusFound)
}

// sessionOf returns the request session, or an anonymous one when the
// Sessions middleware did not run.
func sessionOf(r *http.Request) *session.Session {
	if s, ok := session.FromContext(r.Context()); ok {
		return s
	}
	return session.New()
}
