package session

import "context"

// Session is the request-scoped view of a browser session. It is loaded by
// Manager.Load, mutated by handlers and guards, and written back by Manager.Save.
type Session struct {
	id        string
	userID    string
	flashes   []string
	rotate    bool
	hadCookie bool
}

// New returns an anonymous session that has not been persisted yet.
func New() *Session {
	return &Session{}
}

// Start binds the session to userID. The session id is replaced on the next
// save so that an id known before login cannot be reused after it.
func (s *Session) Start(userID string) {
	s.userID = userID
	s.rotate = true
}

// CurrentUserID returns the bound user, if any.
func (s *Session) CurrentUserID() (string, bool) {
	return s.userID, s.userID != ""
}

// End clears the user binding. Calling it on an anonymous session is a no-op.
func (s *Session) End() {
	if s.userID == "" {
		return
	}
	s.userID = ""
	s.rotate = true
}

// AddFlash queues a one-shot notice for the next rendered page.
func (s *Session) AddFlash(msg string) {
	s.flashes = append(s.flashes, msg)
}

// Flashes returns the queued notices and clears them.
func (s *Session) Flashes() []string {
	flashes := s.flashes
	s.flashes = nil
	return flashes
}

func (s *Session) empty() bool {
	return s.userID == "" && len(s.flashes) == 0
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by NewContext.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}
