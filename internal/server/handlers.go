package server

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/starter/el"
	"github.com/vango-dev/starter/internal/components"
	"github.com/vango-dev/starter/internal/pages"
	"github.com/vango-dev/starter/pkg/markup"
	"github.com/vango-dev/starter/pkg/render"
)

const htmlContentType = "text/html; charset=utf-8"

var toastMessages = map[components.Level]string{
	components.LevelSuccess: "Your changes were saved.",
	components.LevelInfo:    "A new version is available.",
	components.LevelWarning: "Your session expires in five minutes.",
	components.LevelError:   "Something went wrong. Try again.",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := "/" + chi.URLParam(r, "page")
	p, ok := s.pages.LookupPath(path)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	s.writePage(w, r, http.StatusOK, s.pages.PageData(r.Context(), p))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	p := pages.Page{
		Name:  "not-found",
		Path:  r.URL.Path,
		Title: "Not found",
		Content: func(context.Context) markup.Part {
			return el.Group{
				el.H1(el.Text("Page not found")),
				el.P(el.Text("Nothing lives at "), el.Code(el.Text(r.URL.Path)), el.Text(".")),
				el.P(el.A(el.Href("/"), el.Text("Back home"))),
			}
		},
	}
	s.writePage(w, r, http.StatusNotFound, s.pages.PageData(r.Context(), p))
}

// writePage streams a full document, flushing the head before the body.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, data render.PageData) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	sr := render.NewStreamingRenderer(w, s.renderer.Config())
	if err := sr.RenderPage(r.Context(), data); err != nil {
		s.logger.Error("page render failed", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) handleToast(w http.ResponseWriter, r *http.Request) {
	level := components.LevelInfo
	if v := r.URL.Query().Get("level"); v != "" {
		parsed, err := components.ParseLevel(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		level = parsed
	}
	msg := r.URL.Query().Get("message")
	if msg == "" {
		msg = toastMessages[level]
	}
	s.writeFragment(w, r, components.Toast(level, msg))
}

func (s *Server) handleCounter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	n, err := strconv.Atoi(r.PostForm.Get("n"))
	if err != nil || !components.ValidCounter(n) {
		http.Error(w, "invalid counter value", http.StatusBadRequest)
		return
	}
	n, ok := components.ApplyCounterOp(n, r.PostForm.Get("op"))
	if !ok {
		http.Error(w, "unknown counter operation", http.StatusBadRequest)
		return
	}
	s.writeFragment(w, r, components.Counter(n))
}

func (s *Server) writeFragment(w http.ResponseWriter, r *http.Request, p markup.Part) {
	w.Header().Set("Content-Type", htmlContentType)
	if err := s.renderer.RenderToWriter(r.Context(), w, p); err != nil {
		s.logger.Error("fragment render failed", "path", r.URL.Path, "error", err)
	}
}
