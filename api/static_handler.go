package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// staticHandler serves the built frontend. Unknown paths get index.html so the
// client-side router can resolve them.
type staticHandler struct {
	responder Responder
	logger    zerolog.Logger
	root      string
}

func newStaticHandler(root string) staticHandler {
	logger := log.With().Str("handlerName", "staticHandler").Logger()

	return staticHandler{
		responder: NewResponder(logger),
		logger:    logger,
		root:      root,
	}
}

func (h staticHandler) serveSPA() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)

		if clean != "/" {
			if h.serveFile(w, r, filepath.Join(h.root, filepath.FromSlash(clean))) {
				return
			}
		}

		if !h.serveFile(w, r, filepath.Join(h.root, "index.html")) {
			h.responder.WriteText(w, http.StatusNotFound, "Not Found")
		}
	}
}

// apiNotFound keeps unknown API paths answering in JSON instead of serving the app shell.
func (h staticHandler) apiNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteError(w, errs.NewNotFoundError("route "+r.URL.Path))
	}
}

// serveFile writes the named regular file and reports whether it existed.
func (h staticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
