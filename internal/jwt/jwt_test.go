package jwt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWT_GenerateAndDecode(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	j := New(WithSecretKey("test-secret"), WithLifetime(time.Hour), WithClock(fixedClock(now)))
	ctx := context.Background()

	token, err := j.Generate(ctx, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.Decode(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01T13:00:00", claims["jwt_exp"])

	userID, err := UserID(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	assert.NoError(t, j.CheckExpiry(claims))
}

func TestJWT_DecodeErrors(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	t.Run("Garbage", func(t *testing.T) {
		claims, err := j.Decode(ctx, "invalid.token.string")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token := sign(t, "other-secret", jwt.MapClaims{"user_id": 1})
		_, err := j.Decode(ctx, token)
		assert.Error(t, err)
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"user_id": 1}).
			SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = j.Decode(ctx, token)
		assert.Error(t, err)
	})
}

func TestJWT_CheckExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	j := New(WithClock(fixedClock(now)))

	tests := []struct {
		name   string
		claims jwt.MapClaims
		err    error
	}{
		{"FutureNaive", jwt.MapClaims{"jwt_exp": "2024-03-01T12:00:01"}, nil},
		{"FutureMicroseconds", jwt.MapClaims{"jwt_exp": "2024-03-31T12:00:00.123456"}, nil},
		{"OffsetEqualsNow", jwt.MapClaims{"jwt_exp": "2024-03-01T15:00:00+03:00"}, ErrTokenExpired},
		{"Equal", jwt.MapClaims{"jwt_exp": "2024-03-01T12:00:00"}, ErrTokenExpired},
		{"Past", jwt.MapClaims{"jwt_exp": "2024-02-01T12:00:00"}, ErrTokenExpired},
		{"Missing", jwt.MapClaims{}, ErrInvalidExpiry},
		{"NotString", jwt.MapClaims{"jwt_exp": json.Number("1709294400")}, ErrInvalidExpiry},
		{"BadFormat", jwt.MapClaims{"jwt_exp": "tomorrow"}, ErrInvalidExpiry},
		{"DateOnlyFuture", jwt.MapClaims{"jwt_exp": "2024-03-02"}, nil},
		{"DateOnlyToday", jwt.MapClaims{"jwt_exp": "2024-03-01"}, ErrTokenExpired},
		{"MinutesFuture", jwt.MapClaims{"jwt_exp": "2024-03-01T12:01"}, nil},
		{"MinutesWithOffset", jwt.MapClaims{"jwt_exp": "2024-03-01T15:01+03:00"}, nil},
		{"SpaceSeparator", jwt.MapClaims{"jwt_exp": "2024-03-01 12:00:30.5"}, nil},
		{"SpaceSeparatorPast", jwt.MapClaims{"jwt_exp": "2024-03-01 11:59"}, ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := j.CheckExpiry(tt.claims)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestJWT_ExpiredAfterLifetime(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	token, err := New(WithSecretKey("s"), WithLifetime(time.Minute), WithClock(fixedClock(issued))).Generate(ctx, 1)
	require.NoError(t, err)

	later := New(WithSecretKey("s"), WithClock(fixedClock(issued.Add(2*time.Minute))))
	claims, err := later.Decode(ctx, token)
	require.NoError(t, err)
	assert.ErrorIs(t, later.CheckExpiry(claims), ErrTokenExpired)
}

func TestUserID(t *testing.T) {
	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    int64
		wantErr bool
	}{
		{"Number", jwt.MapClaims{"user_id": json.Number("42")}, 42, false},
		{"Float", jwt.MapClaims{"user_id": float64(42)}, 42, false},
		{"Fraction", jwt.MapClaims{"user_id": json.Number("4.2")}, 0, true},
		{"String", jwt.MapClaims{"user_id": "42"}, 0, true},
		{"Missing", jwt.MapClaims{}, 0, true},
		{"Bool", jwt.MapClaims{"user_id": true}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserID(tt.claims)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", nil},
		{"Whitespace", "   ", "", nil},
		{"LowercaseScheme", "bearer mytoken123", "", nil},
		{"OtherScheme", "Token mytoken123", "", nil},
		{"SchemeOnly", "Bearer", "", ErrBadAuthorizationHeader},
		{"TooManyParts", "Bearer a b", "", ErrBadAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			assert.Equal(t, tt.expectedToken, token)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJWT_CustomHeaderAndScheme(t *testing.T) {
	j := New(WithHeaderName("X-Auth"), WithScheme("JWT"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Auth", "JWT abc")
	req.Header.Set("Authorization", "Bearer ignored")

	token, err := j.GetTokenFromRequest(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)
}
