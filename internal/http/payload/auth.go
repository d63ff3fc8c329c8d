package payload

import (
	"grocery/internal/core"
	"net/url"
	"strings"

	"github.com/jellydator/validation"
)

const msgCredentialsEmpty = "username or password cannot be empty."

const (
	MaxUsernameLength = 255
	MaxNameLength     = 255
	// MaxPasswordLength is in bytes, the most bcrypt will hash.
	MaxPasswordLength = 72
)

type LoginRequest struct {
	Username string
	Password string
}

func (l *LoginRequest) Bind(form url.Values) {
	l.Username = strings.TrimSpace(form.Get("username"))
	l.Password = form.Get("password")
}

func (l LoginRequest) Validate() error {
	required := validation.Required.Error(msgCredentialsEmpty)
	return firstError(
		validation.Validate(l.Username, required),
		validation.Validate(l.Password, required),
	)
}

func (l LoginRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: l.Username,
		Password: l.Password,
	}
}

type RegisterRequest struct {
	Username string
	Name     string
	Password string
}

func (rr *RegisterRequest) Bind(form url.Values) {
	rr.Username = strings.TrimSpace(form.Get("username"))
	rr.Name = strings.TrimSpace(form.Get("name"))
	rr.Password = form.Get("password")
}

func (rr RegisterRequest) Validate() error {
	required := validation.Required.Error(msgCredentialsEmpty)
	return firstError(
		validation.Validate(rr.Username, required),
		validation.Validate(rr.Password, required),
		validation.Validate(rr.Username,
			validation.RuneLength(0, MaxUsernameLength).Error("username cannot be longer than 255 characters.")),
		validation.Validate(rr.Name,
			validation.RuneLength(0, MaxNameLength).Error("name cannot be longer than 255 characters.")),
		validation.Validate(rr.Password,
			validation.Length(0, MaxPasswordLength).Error("password cannot be longer than 72 bytes.")),
	)
}

func (rr RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: rr.Username,
		Name:     rr.Name,
		Password: rr.Password,
	}
}
