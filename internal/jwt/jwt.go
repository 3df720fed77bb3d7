package jwt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultLifetime is how long an issued token stays valid
	DefaultLifetime = 30 * 24 * time.Hour
	// DefaultHeaderName is the request header carrying the token
	DefaultHeaderName = "Authorization"
	// DefaultScheme is the expected first word of the header value
	DefaultScheme = "Bearer"

	claimUserID = "user_id"
	claimExpiry = "jwt_exp"

	// expiryLayout is an ISO-8601 timestamp without zone, always in UTC
	expiryLayout = "2006-01-02T15:04:05.999999"
)

var (
	ErrBadAuthorizationHeader = errors.New("bad authorization header")
	ErrInvalidExpiry          = errors.New("invalid token expired datetime format")
	ErrTokenExpired           = errors.New("token has expired")
	ErrInvalidPayload         = errors.New("invalid jwt token payload")
)

// Claims is the decoded token payload
type Claims = jwt.MapClaims

// JWT issues and decodes HS256 tokens with a user_id and an ISO-8601 jwt_exp claim.
type JWT struct {
	secretKey  string
	lifetime   time.Duration
	headerName string
	scheme     string
	now        func() time.Time
}

// Opt configures a JWT
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = key
	}
}

// WithLifetime sets the token lifetime
func WithLifetime(d time.Duration) Opt {
	return func(j *JWT) {
		j.lifetime = d
	}
}

// WithHeaderName sets the header the token is read from
func WithHeaderName(name string) Opt {
	return func(j *JWT) {
		if name != "" {
			j.headerName = name
		}
	}
}

// WithScheme sets the authorization scheme, compared case-sensitively
func WithScheme(scheme string) Opt {
	return func(j *JWT) {
		if scheme != "" {
			j.scheme = scheme
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a JWT with defaults overridden by opts
func New(opts ...Opt) *JWT {
	j := &JWT{
		lifetime:   DefaultLifetime,
		headerName: DefaultHeaderName,
		scheme:     DefaultScheme,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for userID
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	claims := jwt.MapClaims{
		claimUserID: userID,
		claimExpiry: j.now().UTC().Add(j.lifetime).Format(expiryLayout),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Decode verifies the signature of tokenString and returns its claims.
// Numeric claims are decoded as json.Number.
func (j *JWT) Decode(ctx context.Context, tokenString string) (Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithJSONNumber())
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// CheckExpiry returns ErrInvalidExpiry when jwt_exp is missing or not an
// ISO-8601 string, and ErrTokenExpired once the current UTC time reaches it.
func (j *JWT) CheckExpiry(claims Claims) error {
	raw, ok := claims[claimExpiry].(string)
	if !ok {
		return ErrInvalidExpiry
	}

	expiresAt, err := parseExpiry(raw)
	if err != nil {
		return ErrInvalidExpiry
	}

	if !j.now().UTC().Before(expiresAt) {
		return ErrTokenExpired
	}
	return nil
}

// UserID returns the integer user_id claim or ErrInvalidPayload
func UserID(claims Claims) (int64, error) {
	switch v := claims[claimUserID].(type) {
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, ErrInvalidPayload
		}
		return id, nil
	case float64:
		id := int64(v)
		if float64(id) != v {
			return 0, ErrInvalidPayload
		}
		return id, nil
	default:
		return 0, ErrInvalidPayload
	}
}

// GetTokenFromRequest extracts the raw token from the configured header.
// A missing or empty header, or a foreign scheme, yields an empty token and no error.
// A header with the right scheme but not exactly two words yields ErrBadAuthorizationHeader.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	parts := strings.Fields(r.Header.Get(j.headerName))
	if len(parts) == 0 || parts[0] != j.scheme {
		return "", nil
	}
	if len(parts) != 2 {
		return "", ErrBadAuthorizationHeader
	}
	return parts[1], nil
}

// expiryLayouts are the ISO-8601 forms accepted in jwt_exp. Zoneless values are UTC.
var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	expiryLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseExpiry(raw string) (time.Time, error) {
	var err error
	for _, layout := range expiryLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
