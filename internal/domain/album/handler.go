package album

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/domain/asset"
	"portfolio/internal/pkg/response"
)

// Handler serves album CRUD plus the multipart album flows.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /albums, newest first.
func (h *Handler) List(c *gin.Context) {
	albums, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to fetch albums")
		return
	}
	response.Success(c, http.StatusOK, albums)
}

// Get handles GET /albums/:slug, returning metadata plus content.
func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrAlbumNotFound) {
			response.Error(c, http.StatusNotFound, "ALBUM_NOT_FOUND", "album not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to fetch album")
		return
	}
	response.Success(c, http.StatusOK, a)
}

// Create handles POST /albums.
func (h *Handler) Create(c *gin.Context) {
	var req CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", ErrSlugTaken.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create album")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Album created successfully",
		"slug":    a.Slug,
	})
}

// CreateWithFiles handles POST /albums/with-files: an album_data JSON
// field plus repeated files parts, created and uploaded in one request.
func (h *Handler) CreateWithFiles(c *gin.Context) {
	form, err := h.multipartForm(c)
	if err != nil {
		return
	}

	raw := ""
	if values := form.Value["album_data"]; len(values) > 0 {
		raw = values[0]
	}
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_ALBUM_DATA", "album_data field is required")
		return
	}

	var req CreateAlbumRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "album_data is not valid JSON")
		return
	}
	if req.Slug == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_SLUG", "album slug is required")
		return
	}

	files, err := readParts(form.File["files"], h.service.MaxBytes())
	if err != nil {
		h.writeReadPartsError(c, err)
		return
	}

	added, err := h.service.CreateWithFiles(c.Request.Context(), &req, files)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", ErrSlugTaken.Error())
			return
		}
		h.writeFileFlowError(c, err, added)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":      "Album created with files successfully",
		"album_slug":   req.Slug,
		"added_photos": added,
	})
}

// AddPhotos handles PUT /albums/:slug/photos: repeated files parts with
// an optional shared caption field.
func (h *Handler) AddPhotos(c *gin.Context) {
	slug := c.Param("slug")

	form, err := h.multipartForm(c)
	if err != nil {
		return
	}

	caption := ""
	if values := form.Value["caption"]; len(values) > 0 {
		caption = values[0]
	}

	files, err := readParts(form.File["files"], h.service.MaxBytes())
	if err != nil {
		h.writeReadPartsError(c, err)
		return
	}
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "MISSING_FILE", "no files provided")
		return
	}

	added, err := h.service.AddPhotos(c.Request.Context(), slug, caption, files)
	if err != nil {
		if errors.Is(err, ErrAlbumNotFound) {
			response.Error(c, http.StatusNotFound, "ALBUM_NOT_FOUND", "album not found")
			return
		}
		h.writeFileFlowError(c, err, added)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":      "Photos added successfully",
		"album_slug":   slug,
		"added_photos": added,
	})
}

// Update handles PUT /albums/:slug.
func (h *Handler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req UpdateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), slug, &req); err != nil {
		if errors.Is(err, ErrAlbumNotFound) {
			response.Error(c, http.StatusNotFound, "ALBUM_NOT_FOUND", "album not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to update album")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Album updated successfully",
		"slug":    slug,
	})
}

// Delete handles DELETE /albums/:slug.
func (h *Handler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.service.Delete(c.Request.Context(), slug); err != nil {
		if errors.Is(err, ErrAlbumNotFound) {
			response.Error(c, http.StatusNotFound, "ALBUM_NOT_FOUND", "album not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to delete album")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Album deleted successfully",
		"slug":    slug,
	})
}

// RemovePhoto handles DELETE /albums/:slug/photos.
func (h *Handler) RemovePhoto(c *gin.Context) {
	slug := c.Param("slug")

	var req RemovePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	if err := h.service.RemovePhoto(c.Request.Context(), slug, req.ImgURL); err != nil {
		if errors.Is(err, ErrContentNotFound) {
			response.Error(c, http.StatusNotFound, "PHOTO_NOT_FOUND", "photo not found in album")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to remove photo")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Photo removed successfully",
		"slug":    slug,
	})
}

// writeFileFlowError maps upload-pipeline failures that happen inside an
// album flow. A link failure after bytes landed is partial success.
func (h *Handler) writeFileFlowError(c *gin.Context, err error, added []Content) {
	switch {
	case errors.Is(err, asset.ErrLinkFailed):
		response.Partial(c, http.StatusMultiStatus, "LINK_FAILED",
			"files stored but metadata link failed", gin.H{"added_photos": added})
	case errors.Is(err, asset.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, asset.ErrRejectedType):
		response.Error(c, http.StatusBadRequest, "TYPE_REJECTED", err.Error())
	case errors.Is(err, asset.ErrEmptyFile), errors.Is(err, asset.ErrMissingSlug), errors.Is(err, asset.ErrPathEscape):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to store files")
	}
}

// multipartForm parses the request with the same body bound the upload
// endpoint uses, so an oversized request dies at the reader instead of
// being buffered. Writes the error response itself on failure.
func (h *Handler) multipartForm(c *gin.Context) (*multipart.Form, error) {
	maxBody := h.service.MaxBytes() + 1<<20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)

	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeFileFlowError(c, asset.ErrFileTooLarge, nil)
			return nil, err
		}
		response.Error(c, http.StatusBadRequest, "INVALID_MULTIPART", "could not parse multipart form")
		return nil, err
	}
	return form, nil
}

func (h *Handler) writeReadPartsError(c *gin.Context, err error) {
	if errors.Is(err, asset.ErrFileTooLarge) {
		h.writeFileFlowError(c, err, nil)
		return
	}
	response.Error(c, http.StatusBadRequest, "INVALID_FILE", "could not read file part")
}

// readParts buffers the file parts, refusing any part whose declared size
// exceeds the pipeline ceiling before reading a byte of it.
func readParts(headers []*multipart.FileHeader, max int64) ([]FilePart, error) {
	parts := make([]FilePart, 0, len(headers))
	for _, fh := range headers {
		if max > 0 && fh.Size > max {
			return nil, asset.ErrFileTooLarge
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		parts = append(parts, FilePart{Name: fh.Filename, Data: data})
	}
	return parts, nil
}
