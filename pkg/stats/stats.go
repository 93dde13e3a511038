// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// ServerStats is the counter container
type ServerStats struct {
	clients uint64
	bytes   uint64
}

// AddServed increments the number of clients served counter
func (ss *ServerStats) AddServed() {
	atomic.AddUint64(&ss.clients, 1)
}

// AddBytes increments the number of bytes served counter
func (ss *ServerStats) AddBytes(bc int64) {
	if bc <= 0 {
		return
	}
	atomic.AddUint64(&ss.bytes, uint64(bc))
}

// GetStats returns the stats: clients, bytes
func (ss *ServerStats) GetStats() (uint64, uint64) {
	ssClients := atomic.LoadUint64(&ss.clients)
	ssBytes := atomic.LoadUint64(&ss.bytes)
	return ssClients, ssBytes
}

// Handler returns an http.HandlerFunc that returns running totals and
// stats about the server.
func Handler(ss *ServerStats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, b := ss.GetStats()
		if r.URL.Query().Get("format") == "json" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			fmt.Fprintf(w, "{\"ClientsServed\": %d, \"BytesServed\": %d}\n", c, b)
		} else {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			fmt.Fprintf(w, "ClientsServed, BytesServed\n%d, %d\n", c, b)
		}
	}
}
