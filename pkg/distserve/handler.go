// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package distserve

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/cactus/mlog"
)

// ErrRootNotFound is returned by NewFileHandler (and New) when the build
// output directory does not exist. The directory is produced by an external
// build step, so the caller can turn this into an actionable message.
var ErrRootNotFound = errors.New("build output directory not found")

// MetricsCollector is the interface a stats collector must implement to
// receive serve counts from the file handler.
type MetricsCollector interface {
	AddServed()
	AddBytes(bc int64)
}

// A FileHandler serves files out of a build output directory. All request
// handling (index resolution, content type inference, 404s, and path
// traversal protection) defers to http.FileServer; this type only adds
// serve counting and debug logging around it.
type FileHandler struct {
	fs      http.Handler
	metrics MetricsCollector
	root    string
}

// NewFileHandler returns a new FileHandler serving from root. Returns an
// error if root does not exist or is not a directory.
func NewFileHandler(root string) (*FileHandler, error) {
	fi, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("could not stat %s: %w", root, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	return &FileHandler{
		fs:   http.FileServer(http.Dir(root)),
		root: root,
	}, nil
}

// SetMetricsCollector sets a metrics collector
func (h *FileHandler) SetMetricsCollector(mc MetricsCollector) {
	h.metrics = mc
}

// Root returns the directory files are served from.
func (h *FileHandler) Root() string {
	return h.root
}

// ServeHTTP fulfills the http server interface
func (h *FileHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if mlog.HasDebug() {
		mlog.Debugm("client request", httpReqToMlogMap(req))
	}

	cw := &countingWriter{ResponseWriter: w}
	h.fs.ServeHTTP(cw, req)

	requestsServed.Inc()
	bytesWritten.Add(float64(cw.written))
	if cw.status == http.StatusNotFound {
		responsesNotFound.Inc()
	}

	if h.metrics != nil {
		h.metrics.AddServed()
		h.metrics.AddBytes(cw.written)
	}

	if mlog.HasDebug() {
		mlog.Debugm("response to client", mlog.Map{
			"status": cw.status,
			"bytes":  cw.written,
			"path":   req.URL.Path,
		})
	}
}

// countingWriter records the status code and body byte count flowing
// through a response, for stats and metrics accounting.
type countingWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *countingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *countingWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.written += int64(n)
	return n, err
}
