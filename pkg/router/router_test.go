// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package router

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func makeRouter() *DumbRouter {
	return &DumbRouter{
		ServerName: "test-server",
		AddHeaders: map[string]string{
			"Access-Control-Allow-Origin": "*",
			"X-Test-Header":               "present",
		},
		FileHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "file contents")
		}),
	}
}

func routeRequest(dr *DumbRouter, method, path string) *http.Response {
	req := httptest.NewRequest(method, "http://example.com"+path, nil)
	record := httptest.NewRecorder()
	dr.ServeHTTP(record, req)
	return record.Result()
}

func TestRouterAddsHeaders(t *testing.T) {
	t.Parallel()
	resp := routeRequest(makeRouter(), "GET", "/somefile.js")
	assert.Check(t, is.Equal(200, resp.StatusCode))
	assert.Check(t, is.Equal("*", resp.Header.Get("Access-Control-Allow-Origin")))
	assert.Check(t, is.Equal("present", resp.Header.Get("X-Test-Header")))
	assert.Check(t, is.Equal("test-server", resp.Header.Get("Server")))
	assert.Check(t, resp.Header.Get("Date") != "", "expected a Date header")
}

func TestRouterPreflight(t *testing.T) {
	t.Parallel()
	resp := routeRequest(makeRouter(), "OPTIONS", "/anything/at/all")
	assert.Check(t, is.Equal(204, resp.StatusCode))
	assert.Check(t, is.Equal("*", resp.Header.Get("Access-Control-Allow-Origin")))
	body, err := io.ReadAll(resp.Body)
	assert.Check(t, err)
	assert.Check(t, is.Len(body, 0))
}

func TestRouterMethodNotAllowed(t *testing.T) {
	t.Parallel()
	for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
		resp := routeRequest(makeRouter(), method, "/somefile.js")
		assert.Check(t, is.Equal(405, resp.StatusCode), "method %s", method)
		// even rejections carry the configured headers
		assert.Check(t, is.Equal("*", resp.Header.Get("Access-Control-Allow-Origin")))
	}
}

func TestRouterHealthCheck(t *testing.T) {
	t.Parallel()
	resp := routeRequest(makeRouter(), "GET", "/healthcheck")
	assert.Check(t, is.Equal(200, resp.StatusCode))
}

func TestRouterStatsRouteDisabled(t *testing.T) {
	t.Parallel()
	// no StatsHandler set: /status falls through to the file handler
	resp := routeRequest(makeRouter(), "GET", "/status")
	assert.Check(t, is.Equal(200, resp.StatusCode))
	body, err := io.ReadAll(resp.Body)
	assert.Check(t, err)
	assert.Check(t, is.Equal("file contents", string(body)))
}

func TestRouterStatsRouteEnabled(t *testing.T) {
	t.Parallel()
	dr := makeRouter()
	dr.StatsHandler = func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "stats!")
	}
	resp := routeRequest(dr, "GET", "/status")
	assert.Check(t, is.Equal(200, resp.StatusCode))
	body, err := io.ReadAll(resp.Body)
	assert.Check(t, err)
	assert.Check(t, is.Equal("stats!", string(body)))
}
