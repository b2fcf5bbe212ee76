package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// maxPictureBytes caps uploaded meal pictures.
const maxPictureBytes = 10 << 20

// PictureUploader stores a picture and returns its public URL.
type PictureUploader interface {
	UploadPicture(ctx context.Context, file io.Reader) (string, error)
}

type UploadResponse struct {
	URL string `json:"url"`
}

type UploadHandler struct {
	uploader PictureUploader
	log      zerolog.Logger
}

// NewUploadHandler returns a handler for meal pictures. A nil uploader makes
// every upload answer 503.
func NewUploadHandler(uploader PictureUploader, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{uploader: uploader, log: log}
}

// UploadPicture handles POST /api/meals/picture with a multipart "picture"
// field and returns the URL to store as the meal's picture.
func (h *UploadHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		writeError(w, http.StatusServiceUnavailable, "File upload service not available")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPictureBytes+(1<<20))
	if err := r.ParseMultipartForm(maxPictureBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse form: "+err.Error())
		return
	}

	file, fileHeader, err := r.FormFile("picture")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No picture provided")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		writeError(w, http.StatusBadRequest, "Picture must be an image")
		return
	}

	url, err := h.uploader.UploadPicture(r.Context(), file)
	if err != nil {
		h.log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("picture upload failed")
		writeError(w, http.StatusInternalServerError, "Failed to upload picture")
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{URL: url})
}
