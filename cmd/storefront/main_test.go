package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/app/mall/cart"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/storage"
	"github.com/dmitrymomot/storefront/integration/storage/bolt"
)

func TestLoadServeConfigPrecedence(t *testing.T) {
	t.Setenv("STOREFRONT_DIR", "from-env")
	t.Setenv("STOREFRONT_API_PREFIX", "/backend")
	t.Setenv("STOREFRONT_BASE_PATH", "/env")

	file := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(file, []byte("dir: from-yaml\nbase_path: /yaml\nserver:\n  addr: \":9000\"\n"), 0o600))

	cfg, handled, err := loadServeConfig([]string{"--config", file, "--base-path", "/flag"}, io.Discard)
	require.NoError(t, err)
	assert.False(t, handled)

	assert.Equal(t, "from-yaml", cfg.Dir)
	assert.Equal(t, "/flag", cfg.BasePath)
	assert.Equal(t, "/backend", cfg.APIPrefix)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoadServeConfigDefaults(t *testing.T) {
	cfg, _, err := loadServeConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "dist", cfg.Dir)
	assert.Equal(t, "/", cfg.BasePath)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, ":5173", cfg.Server.Addr)
	assert.Empty(t, cfg.APIUpstream)
}

func TestLoadServeConfigHelp(t *testing.T) {
	var out bytes.Buffer
	_, handled, err := loadServeConfig([]string{"--help"}, &out)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Contains(t, out.String(), "--api-upstream")
}

func clientFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":       {Data: []byte(`<div id="root"></div>`)},
		"storefront.wasm":  {Data: []byte("wasm")},
		"assets/style.css": {Data: []byte("body{}")},
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandlerServesClient(t *testing.T) {
	t.Parallel()

	h, err := newHandler(serveConfig{BasePath: "/", APIPrefix: "/api"}, clientFS(), logger.Discard())
	require.NoError(t, err)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, `<div id="root"></div>`},
		{"/product/42", http.StatusOK, `<div id="root"></div>`},
		{"/assets/style.css", http.StatusOK, "body{}"},
		{"/api/products", http.StatusNotFound, ""},
		{"/health/live", http.StatusOK, "ALIVE"},
		{"/health/ready", http.StatusOK, "READY"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := get(t, h, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestHandlerProxiesAPI(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"path":"`+r.URL.Path+`","query":"`+r.URL.RawQuery+`"}`)
	}))
	t.Cleanup(upstream.Close)

	h, err := newHandler(serveConfig{BasePath: "/shop", APIPrefix: "/api", APIUpstream: upstream.URL}, clientFS(), logger.Discard())
	require.NoError(t, err)

	rec := get(t, h, "/api/products?page=2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"path":"/api/products","query":"page=2"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, get(t, h, "/shop/product/1").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/elsewhere").Code)
	assert.Equal(t, "READY", get(t, h, "/health/ready").Body.String())
}

func TestHandlerUpstreamDown(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.NotFoundHandler())
	url := upstream.URL
	upstream.Close()

	h, err := newHandler(serveConfig{BasePath: "/", APIPrefix: "/api", APIUpstream: url}, clientFS(), logger.Discard())
	require.NoError(t, err)

	rec := get(t, h, "/api/categories")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"api upstream unavailable"}`, rec.Body.String())
	assert.Equal(t, http.StatusServiceUnavailable, get(t, h, "/health/ready").Code)
}

func TestHandlerRejectsBadSettings(t *testing.T) {
	t.Parallel()

	_, err := newHandler(serveConfig{APIPrefix: "/api", APIUpstream: "localhost"}, clientFS(), logger.Discard())
	assert.Error(t, err)

	_, err = newHandler(serveConfig{APIPrefix: ""}, clientFS(), logger.Discard())
	assert.Error(t, err)

	_, err = newHandler(serveConfig{APIPrefix: "/api"}, fstest.MapFS{}, logger.Discard())
	assert.Error(t, err)
}

func seedCart(t *testing.T, items ...cart.Item) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.db")
	st, err := bolt.Open(path)
	require.NoError(t, err)
	require.NoError(t, storage.SaveJSON(context.Background(), st, cart.DefaultStorageKey, items))
	require.NoError(t, st.Close())
	return path
}

func TestCartCommand(t *testing.T) {
	t.Parallel()

	path := seedCart(t,
		cart.Item{ProductID: "1", Title: "수건", Price: 3000, Quantity: 2},
		cart.Item{ProductID: "2", Title: "컵", Price: 1500, Quantity: 1},
	)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"cart", "--bolt-path", path}, &out))
	assert.Contains(t, out.String(), "수건")
	assert.Contains(t, out.String(), "6,000원")
	assert.Contains(t, out.String(), "7,500원")

	out.Reset()
	require.NoError(t, run(ctx, []string{"cart", "--bolt-path", path, "remove", "1"}, &out))
	assert.NotContains(t, out.String(), "수건")
	assert.Contains(t, out.String(), "1,500원")

	assert.Error(t, run(ctx, []string{"cart", "--bolt-path", path, "remove", "404"}, io.Discard))

	out.Reset()
	require.NoError(t, run(ctx, []string{"cart", "--bolt-path", path, "clear"}, &out))
	assert.Equal(t, "cart is empty\n", out.String())

	st, err := bolt.Open(path)
	require.NoError(t, err)
	defer st.Close()
	var items []cart.Item
	require.NoError(t, storage.LoadJSON(ctx, st, cart.DefaultStorageKey, &items))
	assert.Empty(t, items)
}

func TestCartRemoveLeavesCartUntouchedOnUnknownID(t *testing.T) {
	t.Parallel()

	path := seedCart(t,
		cart.Item{ProductID: "1", Title: "수건", Price: 3000, Quantity: 2},
		cart.Item{ProductID: "2", Title: "컵", Price: 1500, Quantity: 1},
	)
	ctx := context.Background()

	err := run(ctx, []string{"cart", "--bolt-path", path, "remove", "1", "404"}, io.Discard)
	require.ErrorContains(t, err, `"404"`)

	st, err := bolt.Open(path)
	require.NoError(t, err)
	defer st.Close()
	var items []cart.Item
	require.NoError(t, storage.LoadJSON(ctx, st, cart.DefaultStorageKey, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, "2", items[1].ProductID)
}

func TestCartCommandRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"cart", "--store", "redis", "--redis-url", url, "--key", "cmd_test_cart", "clear"}, &out))
	assert.Equal(t, "cart is empty\n", out.String())
}

func TestRunRejectsUnknownCommands(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Error(t, run(ctx, []string{"deploy"}, io.Discard))
	assert.Error(t, run(ctx, []string{"cart", "--store", "s3"}, io.Discard))
	assert.Error(t, run(ctx, []string{"cart", "--bolt-path", filepath.Join(t.TempDir(), "c.db"), "explode"}, io.Discard))

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"help"}, &out))
	assert.Contains(t, out.String(), "serve")
}
