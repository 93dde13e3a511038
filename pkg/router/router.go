// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package router

import (
	"net/http"
)

// DumbRouter is a basic, special purpose, http router
type DumbRouter struct {
	FileHandler    http.Handler
	StatsHandler   http.HandlerFunc
	MetricsHandler http.Handler
	ServerName     string
	AddHeaders     map[string]string
}

// SetHeaders sets the headers on the response
func (dr *DumbRouter) SetHeaders(w http.ResponseWriter) {
	h := w.Header()
	for k, v := range dr.AddHeaders {
		h.Set(k, v)
	}
	h.Set("Date", formattedDate.String())
	h.Set("Server", dr.ServerName)
}

// HealthCheckHandler is HTTP handler for confirming the service
// is available from an external client, such as a load balancer.
func (dr *DumbRouter) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ServeHTTP fulfills the http server interface
func (dr *DumbRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// set some default headers
	dr.SetHeaders(w)

	// OPTIONS is one of the advertised CORS methods, so preflight
	// requests get a direct empty response for any path
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != "HEAD" && r.Method != "GET" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path == "/healthcheck" {
		dr.HealthCheckHandler(w, r)
		return
	}

	if dr.StatsHandler != nil && r.URL.Path == "/status" {
		dr.StatsHandler(w, r)
		return
	}

	if dr.MetricsHandler != nil && r.URL.Path == "/metrics" {
		dr.MetricsHandler.ServeHTTP(w, r)
		return
	}

	dr.FileHandler.ServeHTTP(w, r)
}
