package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josptrra/be-rasadhana/domain"
)

// PhotoHandlers handles ingredient photo HTTP requests
type PhotoHandlers struct {
	photoSvc domain.PhotoService
}

// NewPhotoHandlers creates new photo handlers
func NewPhotoHandlers(photoSvc domain.PhotoService) *PhotoHandlers {
	return &PhotoHandlers{photoSvc: photoSvc}
}

// Upload handles POST /photos/upload-photo
func (h *PhotoHandlers) Upload(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		fail(c, http.StatusBadRequest, "Field userId is required")
		return
	}

	upload, err := readUpload(c, "photo")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	photo, err := h.photoSvc.UploadPhoto(c.Request.Context(), userID, *upload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStorage):
			fail(c, http.StatusInternalServerError, "Failed to upload photo to storage")
		case errors.Is(err, domain.ErrPersist):
			fail(c, http.StatusInternalServerError, "Photo stored but record could not be saved")
		default:
			fail(c, http.StatusInternalServerError, "Failed to upload photo")
		}
		return
	}

	ok(c, http.StatusCreated, "Photo uploaded", gin.H{
		"id":         photo.ID,
		"photoUrl":   photo.PhotoURL,
		"uploadedAt": photo.UploadedAt,
	})
}

// List handles GET /photos/:userId
func (h *PhotoHandlers) List(c *gin.Context) {
	photos, err := h.photoSvc.ListPhotos(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to list photos")
		return
	}
	if len(photos) == 0 {
		fail(c, http.StatusNotFound, "No photos found")
		return
	}

	ok(c, http.StatusOK, "", photos)
}

// Latest handles GET /photos/latest/:userId
func (h *PhotoHandlers) Latest(c *gin.Context) {
	photo, err := h.photoSvc.LatestPhoto(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			fail(c, http.StatusNotFound, "No photos found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to load latest photo")
		return
	}

	ok(c, http.StatusOK, "", photo)
}
