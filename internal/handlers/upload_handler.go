package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nihalpictures/studio-api/internal/audit"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/middleware"
	"github.com/nihalpictures/studio-api/internal/storage"
)

// 25 MB covers the largest portfolio originals seen so far.
const maxUploadBytes = 25 << 20

type UploadHandler struct {
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewUploadHandler(uploader *storage.Uploader, dispatcher *audit.Dispatcher) *UploadHandler {
	return &UploadHandler{uploader: uploader, audit: dispatcher}
}

// Upload receives one multipart file, converts images to a bounded webp, and
// stores the result in the object bucket. Videos and other binaries pass
// through untouched.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Fichier manquant.")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Fichier trop volumineux.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erreur interne.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erreur interne.")
		return
	}

	name := fileHeader.Filename
	contentType := fileHeader.Header.Get("Content-Type")

	folder := "media"
	if strings.HasPrefix(contentType, "image/") {
		if out, outName, outType, ok := storage.ProcessImage(data, name); ok {
			data, name, contentType = out, outName, outType
		}
	} else if strings.HasPrefix(contentType, "video/") {
		folder = "videos"
	}

	url, err := h.uploader.Upload(c.Request.Context(), data, name, contentType, folder)
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Erreur interne.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "media_uploaded",
		Entity: "media_item",
		Metadata: map[string]any{
			"url":  url,
			"size": len(data),
		},
	})

	c.JSON(201, gin.H{"url": url})
}
