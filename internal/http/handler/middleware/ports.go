package middleware

import (
	"context"
	"grocery/internal/core"
	"grocery/internal/session"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionLoader . SessionLoader
type SessionLoader interface {
	Load(ctx context.Context, r *http.Request) (*session.Session, error)
}

//counterfeiter:generate -o fake -fake-name SessionSaver . SessionSaver
type SessionSaver interface {
	Save(ctx context.Context, w http.ResponseWriter, s *session.Session) error
}

//counterfeiter:generate -o fake -fake-name UserFinder . UserFinder
type UserFinder interface {
	UserByID(ctx context.Context, userID string) (core.UserRecord, error)
}
