package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const allowAll = `
package example.authz

default allow := true
`

const denyAll = `
package example.authz

default allow := false
`

const requireToken = `
package example.authz

default allow := false

allow if {
	input.token == "letmein"
}
`

func handler(t *testing.T, policy string) http.Handler {
	t.Helper()
	is := is.New(t)

	mw, err := NewAuthenticator(context.Background(), slog.Default(), strings.NewReader(policy))
	is.NoErr(err)

	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAllowAllPolicy(t *testing.T) {
	is := is.New(t)

	w := httptest.NewRecorder()
	handler(t, allowAll).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/alerts", nil))

	is.Equal(w.Code, http.StatusOK)
}

func TestDenyAllPolicy(t *testing.T) {
	is := is.New(t)

	w := httptest.NewRecorder()
	handler(t, denyAll).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/alerts", nil))

	is.Equal(w.Code, http.StatusUnauthorized)
}

func TestTokenPolicy(t *testing.T) {
	is := is.New(t)

	h := handler(t, requireToken)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/alerts", nil))
	is.Equal(w.Code, http.StatusUnauthorized)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts", nil)
	req.Header.Set("Authorization", "Bearer letmein")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	is.Equal(w.Code, http.StatusOK)
}

func TestBrokenPolicyIsRejected(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthenticator(context.Background(), slog.Default(), strings.NewReader("this is not rego"))
	is.True(err != nil)
}
