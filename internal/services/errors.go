package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-vacancies/internal/repositories"
)

// Reasons reported to clients when authentication is rejected
const (
	ReasonBadHeader         = "Bad authorization header."
	ReasonInvalidExpiry     = "Invalid token expired datetime format."
	ReasonTokenExpired      = "Token has expired."
	ReasonTokenInvalid      = "Token is invalid."
	ReasonInvalidPayload    = "Invalid jwt token payload."
	ReasonAuthenticatedOnly = "Access authenticated only."
	ReasonBadCredentials    = "Invalid user credentials."
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New(ReasonBadCredentials)
)

// TokenError rejects a request that carried a token
type TokenError struct {
	Reason string
}

func (e *TokenError) Error() string {
	return e.Reason
}

// translate maps repository errors onto service errors. entity names the
// record kind in unique violation messages.
func translate(err error, entity string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}

	var uv *repositories.UniqueViolationError
	if errors.As(err, &uv) {
		fields := make(map[string]string, len(uv.Fields))
		for field, value := range uv.Fields {
			fields[field] = fmt.Sprintf("%s with value %s already exists.", entity, value)
		}
		return &ValidationError{Fields: fields}
	}

	return err
}
