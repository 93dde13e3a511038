// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package distserve provides an HTTP server for a pre-built static asset
// directory, adding permissive CORS headers to every response.
package distserve

import (
	"net/http"

	"github.com/cactus/mlog"
)

func httpReqToMlogMap(req *http.Request) mlog.Map {
	return mlog.Map{
		"method":      req.Method,
		"path":        req.RequestURI,
		"proto":       req.Proto,
		"header":      req.Header,
		"host":        req.Host,
		"remote_addr": req.RemoteAddr,
	}
}
