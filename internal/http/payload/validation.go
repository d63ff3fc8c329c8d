package payload

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

const fallbackMessage = "the submitted form is not valid."

// FormPayload is a request payload filled from submitted form values.
type FormPayload interface {
	Bind(form url.Values)
}

type DecodeValidator struct{}

// DecodeAndValidateForm parses the request form into object and validates it
// when it implements validation.Validatable.
func (dv DecodeValidator) DecodeAndValidateForm(r *http.Request, object FormPayload) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}
	object.Bind(r.PostForm)
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// Message extracts the human readable text of a validation failure.
func Message(err error) string {
	var ve validation.Error
	if errors.As(err, &ve) {
		return ve.Message()
	}
	return fallbackMessage
}

// firstError returns the first failure in argument order, so the user sees one
// message at a time. Every check has already run by the time it is called.
func firstError(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
