// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package distserve

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const indexContent = "<!DOCTYPE html>\n<html><head><title>app</title></head><body>built app</body></html>\n"

// newTestRoot builds a throwaway build output directory with the given
// files, plus an index.html.
func newTestRoot(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	if files == nil {
		files = map[string]string{}
	}
	files["index.html"] = indexContent
	for name, contents := range files {
		fpath := filepath.Join(dir, filepath.FromSlash(name))
		err := os.MkdirAll(filepath.Dir(fpath), 0750)
		assert.NilError(t, err)
		err = os.WriteFile(fpath, []byte(contents), 0600)
		assert.NilError(t, err)
	}
	return dir
}

// startTestServer binds a server on an ephemeral port and serves until the
// test ends.
func startTestServer(t *testing.T, config Config) *Server {
	t.Helper()
	if config.Listen == "" {
		config.Listen = "127.0.0.1:0"
	}
	if config.ServerName == "" {
		config.ServerName = "go-distserve"
	}

	s, err := New(config)
	assert.NilError(t, err)
	assert.NilError(t, s.Listen())

	go func() {
		// ErrServerClosed after shutdown; anything else is surfaced by
		// the requests the test makes
		_ = s.Serve()
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func corsHeaderAssert(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Check(t,
		is.Equal("*", resp.Header.Get("Access-Control-Allow-Origin")),
		"Access-Control-Allow-Origin mismatch",
	)
	assert.Check(t,
		is.Equal("GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods")),
		"Access-Control-Allow-Methods mismatch",
	)
	assert.Check(t,
		is.Equal("Content-Type, Authorization", resp.Header.Get("Access-Control-Allow-Headers")),
		"Access-Control-Allow-Headers mismatch",
	)
}

func statusCodeAssert(t *testing.T, expected int, resp *http.Response) {
	t.Helper()
	assert.Check(t,
		is.Equal(expected, resp.StatusCode),
		"Expected %d but got '%d' instead",
		expected, resp.StatusCode,
	)
}
