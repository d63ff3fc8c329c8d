package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"grocery/pkg/jwt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CookieName = "grocery_session"

type record struct {
	UserID  string   `json:"user_id,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
}

// Manager moves sessions between the cookie jar, the request and the store.
// The cookie holds a signed token whose subject is the opaque session id; the
// state itself never leaves the server.
type Manager struct {
	logs   *zap.SugaredLogger
	store  Store
	tokens TokenService
	ttl    time.Duration
	secure bool
}

func NewManager(logger *zap.SugaredLogger, store Store, tokens TokenService, ttl time.Duration, secureCookie bool) *Manager {
	return &Manager{
		logs:   logger,
		store:  store,
		tokens: tokens,
		ttl:    ttl,
		secure: secureCookie,
	}
}

// Load returns the session referenced by the request cookie. A missing,
// tampered or expired cookie yields a fresh anonymous session; only store
// failures are reported as errors.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return New(), nil
	}

	s := &Session{hadCookie: true}

	id, err := m.tokens.Subject(cookie.Value)
	if err != nil {
		m.logs.Infow("discarding session cookie", "error", err)
		return s, nil
	}

	data, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec record
	if err = json.Unmarshal(data, &rec); err != nil {
		m.logs.Errorw("discarding corrupt session record", "error", err)
		return s, nil
	}

	s.id = id
	s.userID = rec.UserID
	s.flashes = rec.Flashes

	return s, nil
}

// Save writes the session back. Non-empty state is stored with a fresh TTL and
// the cookie is reissued; empty state removes the record and expires the cookie.
// It must be called before the response header is written.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.empty() {
		return m.destroy(ctx, w, s)
	}

	if s.id == "" || s.rotate {
		if s.id != "" {
			if err := m.store.Delete(ctx, s.id); err != nil {
				return fmt.Errorf("drop rotated session: %w", err)
			}
		}
		s.id = uuid.NewString()
		s.rotate = false
	}

	data, err := json.Marshal(record{
		UserID:  s.userID,
		Flashes: s.flashes,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = m.store.Set(ctx, s.id, data, m.ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	token, err := m.tokens.Issue(jwt.TokenInfo{
		Subject:    s.id,
		Expiration: m.ttl,
	})
	if err != nil {
		return fmt.Errorf("issue session token: %w", err)
	}

	http.SetCookie(w, m.cookie(token, int(m.ttl.Seconds())))
	s.hadCookie = true

	return nil
}

func (m *Manager) destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.id != "" {
		if err := m.store.Delete(ctx, s.id); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	if s.id != "" || s.hadCookie {
		http.SetCookie(w, m.cookie("", -1))
	}

	s.id = ""
	s.rotate = false
	s.hadCookie = false

	return nil
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
