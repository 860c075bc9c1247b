package handler

import (
	"io"
	"net/http"

	"github.com/aguasmedia/gallery/http/resp"
	"github.com/aguasmedia/gallery/logger"
)

// ImagesHandler serves the client-image listing and proxying endpoints.
type ImagesHandler struct {
	Handler
	images ImageLister
}

func NewImages(h Handler, images ImageLister) *ImagesHandler {
	return &ImagesHandler{Handler: h, images: images}
}

// GetImages lists the file descriptors of every image belonging to the
// requested client.
func (h *ImagesHandler) GetImages(w http.ResponseWriter, r *http.Request) {
	var params struct {
		ClientID string `schema:"clientId" validate:"required"`
	}
	if err := h.p.ParseQueryParams(r.URL.Query(), &params); err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("clientId required"))
		return
	}

	images, err := h.images.ListClientImages(r.Context(), params.ClientID)
	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed fetching images"))
		return
	}

	h.d.Json(w, r, resp.Data(images))
}

// DriveFile proxies one image's bytes to the client.
func (h *ImagesHandler) DriveFile(w http.ResponseWriter, r *http.Request) {
	var params struct {
		FileID string `schema:"fileId" validate:"required"`
	}
	if err := h.p.ParseQueryParams(r.URL.Query(), &params); err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusBadRequest), resp.Msg("fileId required"))
		return
	}

	rc, err := h.images.Download(r.Context(), params.FileID)
	if err != nil {
		h.d.Err(w, r, err, resp.Code(http.StatusInternalServerError), resp.Msg("failed fetching file"))
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	if _, err := io.Copy(w, rc); err != nil {
		// headers are gone; all that's left is noting the broken stream
		h.l.Error("failed streaming file", &logger.LogContext{Error: err, Request: r})
	}
}
