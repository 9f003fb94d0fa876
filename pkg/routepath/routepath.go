// Package routepath cleans request paths so each page has one URL.
package routepath

import (
	"errors"
	"net/http"
	"strings"
)

// Errors returned for paths that cannot be cleaned.
var (
	ErrBackslash     = errors.New("path contains backslash")
	ErrNullByte      = errors.New("path contains null byte")
	ErrPercentEscape = errors.New("invalid percent escape sequence")
	ErrEscapesRoot   = errors.New("path escapes root via ..")
)

// Clean returns the canonical form of an escaped URL path: a leading
// slash, no repeated slashes, no "." or ".." segments and no trailing
// slash except for the root. Percent escapes are kept as written.
func Clean(p string) (string, error) {
	if strings.Contains(p, `\`) {
		return "", ErrBackslash
	}
	if strings.Contains(p, "\x00") || strings.Contains(strings.ToUpper(p), "%00") {
		return "", ErrNullByte
	}
	if strings.Contains(p, "%") {
		if err := checkEscapes(p); err != nil {
			return "", err
		}
	}

	segments := strings.Split(p, "/")
	out := segments[:0]
	for _, seg := range segments {
		switch seg {
		case "", ".":
		case "..":
			if len(out) == 0 {
				return "", ErrEscapesRoot
			}
			out = out[:len(out)-1]
		default:
			out = append(out, seg)
		}
	}
	return "/" + strings.Join(out, "/"), nil
}

// IsCanonical reports whether p is already clean.
func IsCanonical(p string) bool {
	clean, err := Clean(p)
	return err == nil && clean == p
}

func checkEscapes(p string) error {
	for i := 0; i < len(p); i++ {
		if p[i] != '%' {
			continue
		}
		if i+2 >= len(p) || !isHex(p[i+1]) || !isHex(p[i+2]) {
			return ErrPercentEscape
		}
		i += 2
	}
	return nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Redirect sends requests for non-canonical paths to the canonical URL,
// keeping the query. GET and HEAD get 301, other methods 308 so the body
// is replayed. Paths that cannot be cleaned get 400.
func Redirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escaped := r.URL.EscapedPath()
		clean, err := Clean(escaped)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if clean == escaped {
			next.ServeHTTP(w, r)
			return
		}

		target := clean
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		code := http.StatusPermanentRedirect
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			code = http.StatusMovedPermanently
		}
		http.Redirect(w, r, target, code)
	})
}
