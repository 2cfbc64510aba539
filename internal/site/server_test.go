package site

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/docsview/internal/docindex"
	"github.com/ziadkadry99/docsview/internal/markdown"
)

func newTestServer(t *testing.T, allowAll bool) *Server {
	t.Helper()
	idx, err := docindex.New([]docindex.Document{
		{ID: 1, Name: "Install", Content: "# Install\n\n```sh\nmake install\n```\n", Folder: "guides/setup", Path: "guides/install"},
		{ID: 2, Name: "Server", Content: "Run the **server**.", Path: "server"},
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := New(Config{AllowAll: allowAll, Style: "github", TokenPrefix: "hljs-"}, idx,
		markdown.NewRenderer(markdown.Options{Logger: logger}), logger)
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(t, newTestServer(t, false), "/healthz")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, true)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSearchEndpoint(t *testing.T) {
	w := get(t, newTestServer(t, false), "/api/search?q=SERVER")
	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SERVER", resp.Query)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "server", resp.Results[0].Path)
}

func TestSearchEndpointEmptyQueryReturnsAll(t *testing.T) {
	w := get(t, newTestServer(t, false), "/api/search")

	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 1, resp.Results[0].ID)
	assert.Equal(t, []string{"guides", "setup"}, resp.Results[0].Breadcrumb)
}

func TestPageRendersDocument(t *testing.T) {
	w := get(t, newTestServer(t, false), "/guides/install")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<title>Install</title>")
	assert.Contains(t, body, `data-clipboard-text="make install"`)
	assert.Contains(t, body, "copy-btn")
	assert.Contains(t, body, "guides</span> › <span>setup")
	assert.Contains(t, body, `src="/assets/copy.js"`)
}

func TestPageNotFound(t *testing.T) {
	w := get(t, newTestServer(t, false), "/missing/doc")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRootListsDocuments(t *testing.T) {
	w := get(t, newTestServer(t, false), "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/guides/install"`)
	assert.Contains(t, w.Body.String(), `href="/server"`)
}

func TestAssets(t *testing.T) {
	srv := newTestServer(t, false)

	css := get(t, srv, "/assets/highlight.css")
	require.Equal(t, http.StatusOK, css.Code)
	assert.Contains(t, css.Body.String(), ".hljs-")
	assert.Contains(t, css.Body.String(), ".copy-btn")

	js := get(t, srv, "/assets/copy.js")
	require.Equal(t, http.StatusOK, js.Code)
	assert.Contains(t, js.Body.String(), "Code copied to clipboard!")
	assert.Contains(t, js.Body.String(), "Failed to copy")
}

func TestPreviewWebSocket(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, false).Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/preview"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	exchange := func(md string) previewResponse {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(md)))
		var resp previewResponse
		require.NoError(t, conn.ReadJSON(&resp))
		return resp
	}

	first := exchange("```go\nx := 1\n```\n")
	assert.True(t, first.Changed)
	assert.Contains(t, first.HTML, `data-clipboard-text="x := 1"`)

	same := exchange("```go\nx := 1\n```\n")
	assert.False(t, same.Changed)
	assert.Equal(t, first.HTML, same.HTML)

	next := exchange("# Title\n")
	assert.True(t, next.Changed)
	assert.Contains(t, next.HTML, "<h1")
}

func TestDocumentURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/guides/install", DocumentURL("http://localhost:8080/", "/guides/install"))
	assert.Equal(t, "http://docs.local/server", DocumentURL("http://docs.local", "server"))
}
