package middleware

import (
	"grocery/internal/session"
	"net/http"

	"go.uber.org/zap"
)

type SessionMiddleware struct {
	logs     *zap.SugaredLogger
	sessions SessionLoader
}

func NewSessionMiddleware(logger *zap.SugaredLogger, sessions SessionLoader) *SessionMiddleware {
	return &SessionMiddleware{
		logs:     logger,
		sessions: sessions,
	}
}

// Sessions loads the browser session and stores it in the request context
// for the guards and handlers down the chain.
func (m *SessionMiddleware) Sessions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.sessions.Load(r.Context(), r)
		if err != nil {
			http.Error(w, oopsErr, http.StatusInternalServerError)
			m.logs.Errorw("failed to load session",
				"error", err,
				"request_id", RequestIDFrom(r.Context()))
			return
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), s)))
	})
}
