package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/testing/suite"
	"github.com/rocketscienceinc/tictactoe-solo/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store down")

type stubViews struct {
	views map[string]*entity.View
	err   error
}

func (that *stubViews) GetView(_ context.Context, id string) (*entity.View, error) {
	if that.err != nil {
		return nil, that.err
	}

	view, ok := that.views[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return view, nil
}

func newTestServer(t *testing.T, views viewReader) *httptest.Server {
	t.Helper()

	socket := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	static := fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("<html>board</html>")},
	}

	server := httptest.NewServer(NewHandler(suite.NewLogger(), views, socket, static))
	t.Cleanup(server.Close)

	return server
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(url) //nolint: noctx // test request
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestHandler(t *testing.T) {
	view := entity.Render("abc", entity.State{Started: true, Board: entity.Board{entity.PlayerX}})
	server := newTestServer(t, &stubViews{views: map[string]*entity.View{"abc": view}})

	t.Run("Ping answers pong", func(t *testing.T) {
		resp, body := get(t, server.URL+"/ping")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", body)
	})

	t.Run("Root serves the page", func(t *testing.T) {
		resp, body := get(t, server.URL+"/")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "board")
	})

	t.Run("Websocket path goes to the socket handler", func(t *testing.T) {
		resp, _ := get(t, server.URL+"/ws")

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	})

	t.Run("Known session returns its view", func(t *testing.T) {
		// When: asking for a live session
		resp, body := get(t, server.URL+"/api/sessions/abc")

		// Then: the stored view is returned as JSON
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var got entity.View
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, *view, got)
	})

	t.Run("Unknown session is 404", func(t *testing.T) {
		resp, body := get(t, server.URL+"/api/sessions/missing")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "session not found")
	})

	t.Run("CORS header is set for cross origin requests", func(t *testing.T) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/ping", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://example.com")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestHandler_StoreFailure(t *testing.T) {
	server := newTestServer(t, &stubViews{err: errStoreDown})

	resp, body := get(t, server.URL+"/api/sessions/abc")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, body, errStoreDown.Error())
}

func TestEmbeddedPage(t *testing.T) {
	page := httptest.NewServer(NewHandler(suite.NewLogger(), &stubViews{}, http.NotFoundHandler(), web.Static()))
	t.Cleanup(page.Close)

	for _, path := range []string{"/", "/app.js", "/style.css"} {
		resp, body := get(t, page.URL+path)

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, body, path)
	}
}
