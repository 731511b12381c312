// Package guard validates lookup keys before a query reaches storage.
package guard

import (
	"strings"

	"cloud-console-be/internal/repository/repoerr"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

func ID(op, name string, id uuid.UUID) error {
	if id == uuid.Nil {
		return repoerr.InvalidArgument(op, "%s must not be empty", name)
	}
	return nil
}

// Key rejects empty and whitespace-only natural keys.
func Key(op, name, value string) error {
	if strings.TrimSpace(value) == "" {
		return repoerr.InvalidArgument(op, "%s must not be empty", name)
	}
	return nil
}

func Email(op, email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return repoerr.InvalidArgument(op, "email %q is malformed", email)
	}
	return nil
}

func OneOf[T ~string](op, name string, value T, allowed ...T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return repoerr.InvalidArgument(op, "%s %q is not one of %v", name, value, allowed)
}

// First returns the first non-nil error, so call sites can guard several keys in one expression.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
