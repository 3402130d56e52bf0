package pega

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateSuccessStoresToken(t *testing.T) {
	wantToken := base64.StdEncoding.EncodeToString([]byte("kartik:rules"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/casetypes", r.URL.Path)
		if r.Header.Get("Authorization") != "Basic "+wantToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewCredentialStore()
	auth := NewAuthenticator(srv.URL, store)

	ok := auth.Authenticate(context.Background(), "kartik", "rules")
	require.True(t, ok)
	assert.Equal(t, wantToken, store.Token())
}

func TestAuthenticateRejectionLeavesStoreUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := NewCredentialStore()
	store.Set("previous-token")
	auth := NewAuthenticator(srv.URL, store)

	ok := auth.Authenticate(context.Background(), "kartik", "wrong")
	assert.False(t, ok)
	assert.Equal(t, "previous-token", store.Token())
}

func TestAuthenticateUnreachableBackendIsFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	store := NewCredentialStore()
	auth := NewAuthenticator(srv.URL, store)

	ok := auth.Authenticate(context.Background(), "kartik", "rules")
	assert.False(t, ok)
	assert.Empty(t, store.Token())
}

func TestClientUsesTokenFromLogin(t *testing.T) {
	wantToken := BasicToken("kartik", "rules")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Basic "+wantToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/casetypes":
			w.WriteHeader(http.StatusOK)
		case "/data_views/D_TravelLocationsList":
			_, _ = w.Write([]byte(`{"data":[{"City":"Paris"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := NewCredentialStore()
	auth := NewAuthenticator(srv.URL, store)
	client := NewClient(srv.URL, "MyOrg-BookTick-Work-BookTicketReservation", store)

	// Before login the client carries no credential and gets rejected.
	assert.Empty(t, client.ListDestinations(context.Background()))

	require.True(t, auth.Authenticate(context.Background(), "kartik", "rules"))
	assert.Equal(t, []string{"Paris"}, client.ListDestinations(context.Background()))
}

func TestBasicToken(t *testing.T) {
	assert.Equal(t,
		base64.StdEncoding.EncodeToString([]byte("user:pass")),
		BasicToken("user", "pass"))
}
