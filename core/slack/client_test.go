package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{Token: "xoxb-test", APIURL: srv.URL + "/api"})
}

func TestClient_UpdateMembers(t *testing.T) {
	var gotGroup, gotUsers string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usergroups.users.update", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		gotGroup = r.PostForm.Get("usergroup")
		gotUsers = r.PostForm.Get("users")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"usergroup":{"id":"S0AGRP"}}`))
	})

	err := client.UpdateMembers(context.Background(), "S0AGRP", []string{"U111", "U222"})
	require.NoError(t, err)
	assert.Equal(t, "S0AGRP", gotGroup)
	assert.Equal(t, "U111,U222", gotUsers)
}

func TestClient_UpdateMembers_NotOK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_auth"}`))
	})

	err := client.UpdateMembers(context.Background(), "S0AGRP", []string{"U111"})
	assert.ErrorContains(t, err, "invalid_auth")
	assert.ErrorContains(t, err, "S0AGRP")
}

func TestClient_UpdateMembers_EmptyNeverCalls(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := client.UpdateMembers(context.Background(), "S0AGRP", nil)
	assert.Error(t, err)
	assert.False(t, called)
}
