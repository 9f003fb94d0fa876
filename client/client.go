// Package client embeds the browser script that performs fragment swaps.
package client

import (
	_ "embed"
	"net/http"
	"strconv"
)

// Path is the URL the script is served at.
const Path = "/client.js"

// JS is the client script.
//
//go:embed client.js
var JS []byte

// Handler serves JS.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(JS)))
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(JS)
	})
}
