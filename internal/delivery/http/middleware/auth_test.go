package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"showcase/internal/delivery/http/helpers"
	"showcase/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	actor domain.Actor
	err   error
}

func (f *fakeTokenVerifier) Verify(_ string) (domain.Actor, error) {
	if f.err != nil {
		return domain.Actor{}, f.err
	}
	return f.actor, nil
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name          string
		authHeader    string
		verifier      domain.TokenVerifier
		wantStatus    int
		wantBodyCode  string
		nextCalled    bool
		wantContextID string
	}{
		{
			name:          "valid token sets context and calls next",
			authHeader:    "Bearer valid-token",
			verifier:      &fakeTokenVerifier{actor: domain.Actor{UserID: "user-123", Email: "user@example.com"}},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "user-123",
		},
		{
			name:          "guest token sets an anonymous actor",
			authHeader:    "Bearer guest-token",
			verifier:      &fakeTokenVerifier{actor: domain.Actor{UserID: "guest-1", IsAnonymous: true}},
			wantStatus:    http.StatusOK,
			nextCalled:    true,
			wantContextID: "guest-1",
		},
		{
			name:         "missing authorization header",
			authHeader:   "",
			verifier:     &fakeTokenVerifier{},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeNotAuthenticated,
			nextCalled:   false,
		},
		{
			name:         "invalid authorization format no Bearer prefix",
			authHeader:   "Basic abc",
			verifier:     &fakeTokenVerifier{},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeNotAuthenticated,
			nextCalled:   false,
		},
		{
			name:         "empty token after Bearer",
			authHeader:   "Bearer ",
			verifier:     &fakeTokenVerifier{},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeNotAuthenticated,
			nextCalled:   false,
		},
		{
			name:         "verifier returns error",
			authHeader:   "Bearer bad-token",
			verifier:     &fakeTokenVerifier{err: errors.New("token expired")},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeNotAuthenticated,
			nextCalled:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var gotActor domain.Actor
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotActor, _ = ActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			RequireAuth(tt.verifier, logger)(next)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, tt.wantContextID, gotActor.UserID)
				return
			}
			var resp helpers.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantBodyCode, resp.Error.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Run("valid token sets the actor", func(t *testing.T) {
		verifier := &fakeTokenVerifier{actor: domain.Actor{UserID: "user-1", Email: "a@example.com"}}
		var gotActor domain.Actor
		var hadActor bool
		next := func(w http.ResponseWriter, r *http.Request) {
			gotActor, hadActor = ActorFromContext(r.Context())
		}

		req := httptest.NewRequest(http.MethodGet, "/meetings/current", nil)
		req.Header.Set("Authorization", "Bearer valid")
		OptionalAuth(verifier)(next)(httptest.NewRecorder(), req)

		assert.True(t, hadActor)
		assert.Equal(t, "user-1", gotActor.UserID)
	})

	t.Run("missing and invalid tokens still call next", func(t *testing.T) {
		for name, header := range map[string]string{"missing": "", "invalid": "Bearer bad"} {
			t.Run(name, func(t *testing.T) {
				verifier := &fakeTokenVerifier{err: errors.New("bad token")}
				nextCalled := false
				var hadActor bool
				next := func(w http.ResponseWriter, r *http.Request) {
					nextCalled = true
					_, hadActor = ActorFromContext(r.Context())
				}

				req := httptest.NewRequest(http.MethodGet, "/meetings/current", nil)
				if header != "" {
					req.Header.Set("Authorization", header)
				}
				rec := httptest.NewRecorder()
				OptionalAuth(verifier)(next)(rec, req)

				assert.True(t, nextCalled)
				assert.False(t, hadActor)
				assert.Equal(t, http.StatusOK, rec.Code)
			})
		}
	})
}
