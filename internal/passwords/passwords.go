package passwords

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when hashing an empty password
var ErrEmptyPassword = errors.New("password is empty")

var allowedChars = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{8,}$`)

// Hasher produces and verifies bcrypt password hashes
type Hasher struct {
	cost int
}

// New creates a Hasher. A cost outside bcrypt bounds falls back to bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted hash of password
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether password matches the stored hash
func (h *Hasher) Check(password, hashed string) bool {
	if password == "" || hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// IsStrong reports whether password has at least eight characters drawn from
// letters, digits and @$!%*#?& with at least one lower case letter, one upper
// case letter, one digit and one special character.
func IsStrong(password string) bool {
	if !allowedChars.MatchString(password) {
		return false
	}

	var lower, upper, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}
