package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	serve := func(t *testing.T, body string, status int) *Checker {
		t.Helper()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/kavitha/econ101/releases/latest", r.URL.Path)
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		t.Cleanup(server.Close)
		return NewChecker(WithBaseURL(server.URL))
	}

	t.Run("newer available", func(t *testing.T) {
		c := serve(t, `{"tag_name":"v2.1.0","html_url":"https://example.com/v2.1.0"}`, http.StatusOK)
		result, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.1.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v2.1.0", result.ReleaseURL)
	})

	t.Run("already latest", func(t *testing.T) {
		c := serve(t, `{"tag_name":"v2.0.3"}`, http.StatusOK)
		result, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("tag without v prefix", func(t *testing.T) {
		c := serve(t, `{"tag_name":"2.1.0"}`, http.StatusOK)
		result, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})

	t.Run("api error", func(t *testing.T) {
		c := serve(t, `rate limited`, http.StatusForbidden)
		_, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("missing tag", func(t *testing.T) {
		c := serve(t, `{}`, http.StatusOK)
		_, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.3"})
		require.Error(t, err)
	})
}
