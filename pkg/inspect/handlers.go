package inspect

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	rkerrors "github.com/vango-dev/reactkit/internal/errors"
	"github.com/vango-dev/reactkit/pkg/reactive"
	"github.com/vango-dev/reactkit/pkg/snapshot"
)

// KeyInfo is one entry of the /keys listing.
type KeyInfo struct {
	Key       string `json:"key"`
	Listeners int    `json:"listeners"`
}

// statePath turns the wildcard of /state/* into a dotted path. Slashes and
// dots both separate segments.
func statePath(r *http.Request) string {
	p := strings.Trim(chi.URLParam(r, "*"), "/")
	return strings.ReplaceAll(p, "/", ".")
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	path := statePath(r)
	if path == "" {
		writeJSON(w, http.StatusOK, s.root.Snapshot())
		return
	}
	v, err := reactive.GetPath(s.root, path)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reactive.Plain(v))
}

func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, rkerrors.New("P001").Wrap(err))
		return
	}
	v, err := snapshot.JSON.Unmarshal(body)
	if err != nil {
		s.writeError(w, rkerrors.New("P001").Wrap(err))
		return
	}

	path := statePath(r)
	if err := reactive.SetPath(s.root, path, v); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Debug("state set", "path", path)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteState(w http.ResponseWriter, r *http.Request) {
	path := statePath(r)
	if err := reactive.DeletePath(s.root, path); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Debug("state deleted", "path", path)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	reg := s.root.Registry()
	keys := reg.Keys()
	out := make([]KeyInfo, 0, len(keys))
	for _, k := range keys {
		out = append(out, KeyInfo{Key: k, Listeners: reg.Len(k)})
	}
	writeJSON(w, http.StatusOK, out)
}

// writeError maps coded errors to HTTP statuses and writes them as JSON.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, reactive.ErrPathNotFound):
		status = http.StatusNotFound
	case errors.Is(err, reactive.ErrNotContainer):
		status = http.StatusConflict
	}

	e := rkerrors.FromError(err, "P001")
	if e.Code == "P001" {
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("inspector request failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, e.FormatJSON())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
