// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// VideoHandler serves recorded exercise video files from local storage
type VideoHandler struct {
	root string
}

// NewVideoHandler creates a new video handler rooted at root.
func NewVideoHandler(root string) *VideoHandler {
	return &VideoHandler{root: root}
}

// HandleVideoFile handles GET /api/videoFile?event=X&fileName=Y&variant=Z
// requests, streaming <root>/<event>/<variant>/<fileName>. The resolved
// path must stay under the video root; anything else is a bad request.
func (h *VideoHandler) HandleVideoFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	event := q.Get("event")
	fileName := q.Get("fileName")
	variant := q.Get("variant")
	if event == "" || fileName == "" || variant == "" {
		writeBadRequest(w)
		return
	}

	root, err := filepath.Abs(h.root)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	path := filepath.Join(root, event, variant, fileName)
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		writeBadRequest(w)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not Found"})
		return
	}
	http.ServeFile(w, r, path)
}
