// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package distserve

// corsHeaders are stamped on every response, for every path and status
// code, so that a page embedding third party content (a video player
// iframe, for example) can fetch assets without the browser blocking the
// request on cross-origin policy.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
}
