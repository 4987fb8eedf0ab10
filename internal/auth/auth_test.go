package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewTokens_ShortSecret(t *testing.T) {
	if _, err := NewTokens([]byte("short"), time.Hour); err == nil {
		t.Fatal("expected error for short secret")
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens, err := NewTokens(testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	s, exp, err := tokens.Issue(42, "admin", "Admin User")
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry in the past: %v", exp)
	}
	p, err := tokens.Verify(s)
	if err != nil {
		t.Fatal(err)
	}
	if p.UserID != 42 || p.Username != "admin" {
		t.Fatalf("principal: got %+v", p)
	}
}

func TestTokens_Expired(t *testing.T) {
	tokens, _ := NewTokens(testSecret, time.Minute)
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	s, _, err := tokens.Issue(1, "a", "")
	if err != nil {
		t.Fatal(err)
	}
	tokens.now = time.Now
	if _, err := tokens.Verify(s); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: got %v", err)
	}
}

func TestTokens_WrongSecret(t *testing.T) {
	a, _ := NewTokens(testSecret, time.Hour)
	b, _ := NewTokens([]byte("another-secret-of-enough-length"), time.Hour)
	s, _, _ := a.Issue(1, "a", "")
	if _, err := b.Verify(s); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: got %v", err)
	}
}

func TestTokens_RejectsOtherAlgorithms(t *testing.T) {
	tokens, _ := NewTokens(testSecret, time.Hour)
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tokens.Verify(s); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("HS512 token: got %v", err)
	}
}

func TestMiddleware(t *testing.T) {
	tokens, _ := NewTokens(testSecret, time.Hour)
	good, _, _ := tokens.Issue(7, "sam", "")

	var got *Principal
	h := Middleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = nil
		if p, ok := FromContext(r.Context()); ok {
			got = &p
		}
	}))

	cases := []struct {
		name   string
		header string
		want   int64
	}{
		{"none", "", 0},
		{"garbage", "Bearer nope", 0},
		{"wrong scheme", "Basic " + good, 0},
		{"valid", "Bearer " + good, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			if tc.want == 0 {
				if got != nil {
					t.Fatalf("principal: got %+v, want none", *got)
				}
				return
			}
			if got == nil || got.UserID != tc.want {
				t.Fatalf("principal: got %+v, want user %d", got, tc.want)
			}
		})
	}
}
