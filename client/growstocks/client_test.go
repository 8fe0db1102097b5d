package growstocks

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a local server standing in for the api.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&Config{
		ClientId: 12345,
		Secret:   "test",
		ApiUrl:   server.URL,
	})
}

func TestNewClient(t *testing.T) {
	client := NewClient(&Config{ClientId: 12345, Secret: "test"})

	t.Run("stores credentials unchanged", func(t *testing.T) {
		assert.Equal(t, 12345, client.ClientId())
		assert.Equal(t, "test", client.Secret())
	})

	t.Run("sub-clients share the client", func(t *testing.T) {
		require.NotNil(t, client.Auth)
		require.NotNil(t, client.Pay)
		assert.Same(t, client, client.Auth.client)
		assert.Same(t, client, client.Pay.client)
	})

	t.Run("defaults scopes to profile", func(t *testing.T) {
		assert.Equal(t, "profile", client.config.Scopes.String())
	})

	t.Run("does not mutate the given config", func(t *testing.T) {
		config := &Config{ClientId: 1, Secret: "s"}
		NewClient(config)
		assert.Nil(t, config.Scopes)
		assert.Empty(t, config.ApiUrl)
	})
}

func TestResolveRedirect(t *testing.T) {
	client := NewClient(&Config{
		ClientId: 12345,
		Secret:   "test",
		Redirects: DefaultRedirects{
			Site: "https://example.com",
			Auth: "%s/auth",
			Pay:  "https://pay.example.com/done",
		},
	})

	t.Run("explicit uri wins", func(t *testing.T) {
		uri, err := client.resolveRedirect("https://other.example.com", client.config.Redirects.Auth)
		require.NoError(t, err)
		assert.Equal(t, "https://other.example.com", uri)
	})

	t.Run("fallback expands the site", func(t *testing.T) {
		uri, err := client.resolveRedirect("", client.config.Redirects.Auth)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/auth", uri)
	})

	t.Run("fallback without verb is literal", func(t *testing.T) {
		uri, err := client.resolveRedirect("", client.config.Redirects.Pay)
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/done", uri)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		_, err := client.resolveRedirect("", "")
		assert.ErrorIs(t, err, ErrNoRedirectUri)
	})
}
