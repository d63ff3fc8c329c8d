package session

import (
	"context"
	"grocery/pkg/jwt"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type TokenService interface {
	Issue(data jwt.TokenInfo) (string, error)
	Subject(token string) (string, error)
}
