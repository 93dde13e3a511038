// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package router

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cactus/mlog"
)

const timeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// httpDate holds current date stamp formatting for HTTP date header
type httpDate struct {
	dateValue   atomic.Value
	onceUpdater sync.Once
}

func (h *httpDate) String() string {
	stamp := h.dateValue.Load()
	if stamp == nil {
		mlog.Print("got a nil datestamp. Trying to recover...")
		h.Update()
		return time.Now().UTC().Format(timeFormat)
	}
	return stamp.(string)
}

func (h *httpDate) Update() {
	h.dateValue.Store(time.Now().UTC().Format(timeFormat))
}

func newHTTPDate() *httpDate {
	d := &httpDate{}
	d.Update()
	// spawn a single formattedDate updater
	d.onceUpdater.Do(func() {
		go func() {
			for range time.Tick(1 * time.Second) {
				d.Update()
			}
		}()
	})
	return d
}

var formattedDate = newHTTPDate()
