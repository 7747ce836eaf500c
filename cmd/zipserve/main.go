// Command zipserve exposes archive building over HTTP.
//
// POST a JSON entry list to /archive and receive the assembled ZIP as an
// attachment:
//
//	curl -X POST localhost:8080/archive?filename=notes.zip \
//	    -d '[{"name":"a.txt","content":"hi"}]' -o notes.zip
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/meigma/zipkit"
)

const defaultFilename = "archive.zip"

type server struct {
	logger *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (s *server) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.logger
}

// entryRequest is the wire form of one archive entry.
type entryRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s := &server{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Post("/archive", s.handleArchive)
	r.Get("/healthz", s.handleHealth)

	logger.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleArchive validates the entry list, builds the archive, and serves
// it as a download. Input validation lives here at the calling surface;
// the core library assumes non-empty fields.
func (s *server) handleArchive(w http.ResponseWriter, r *http.Request) {
	var entries []entryRequest
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if len(entries) == 0 {
		http.Error(w, "at least one entry is required", http.StatusBadRequest)
		return
	}

	build := make([]zipkit.Entry, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			http.Error(w, fmt.Sprintf("entry %d: name must be non-empty", i), http.StatusBadRequest)
			return
		}
		if e.Content == "" {
			http.Error(w, fmt.Sprintf("entry %d: content must be non-empty", i), http.StatusBadRequest)
			return
		}
		build = append(build, zipkit.Entry{Name: e.Name, Content: e.Content})
	}

	archive, err := zipkit.Build(r.Context(), build, zipkit.BuildWithLogger(s.log()))
	if err != nil {
		if errors.Is(err, zipkit.ErrUnsupportedCharacter) || errors.Is(err, zipkit.ErrFieldOverflow) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.log().Error("archive build failed", "error", err)
		http.Error(w, "archive build failed", http.StatusInternalServerError)
		return
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = defaultFilename
	}
	w.Header().Set("Content-Type", zipkit.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(archive)
}
