package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/adkotun/tg-memory/memory-backend/responses"
	"github.com/adkotun/tg-memory/memory-backend/utils"
)

// Image resolves an opaque asset reference and serves the card art behind
// it. A token that does not decode references no image: that is a 404, never
// a crash.
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hash := vars["hash"]
	if hash == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "hash is required."})
		return
	}

	filename, err := h.images.Decode(hash)
	if err != nil || filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		utils.HandleError(w, responses.NotFoundError{Msg: "Image not found."})
		return
	}

	data, err := os.ReadFile(filepath.Join(h.cfg.ImageDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			utils.HandleError(w, responses.NotFoundError{Msg: "Image not found."})
			return
		}
		log.Printf("Error reading image %s: %v", filename, err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Error reading image."})
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(data)
}
