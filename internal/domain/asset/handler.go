package asset

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
)

// Handler exposes the upload pipeline and the static file resolver.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /upload. The multipart form carries a "slug" field
// and one or more "file" parts; every file runs the pipeline and the
// response lists the public URLs. Requires the X-API-Key header.
func (h *Handler) Upload(c *gin.Context) {
	// Bound memory before the form is parsed; a little slack covers the
	// non-file fields and multipart framing.
	maxBody := h.service.MaxBytes() + 1<<20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)

	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeUploadError(c, ErrFileTooLarge)
			return
		}
		response.Error(c, http.StatusBadRequest, "INVALID_MULTIPART", "could not parse multipart form")
		return
	}

	slug := ""
	if values := form.Value["slug"]; len(values) > 0 {
		slug = values[0]
	}
	if slug == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_SLUG", "slug field is required")
		return
	}

	fileHeaders := form.File["file"]
	if len(fileHeaders) == 0 {
		response.Error(c, http.StatusBadRequest, "MISSING_FILE", "no files provided")
		return
	}

	var stored []*Stored
	for _, fh := range fileHeaders {
		if max := h.service.MaxBytes(); max > 0 && fh.Size > max {
			writeUploadError(c, ErrFileTooLarge)
			return
		}
		data, err := readPart(fh)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", "could not read file part")
			return
		}

		result, err := h.service.Upload(c.Request.Context(), slug, fh.Filename, data)
		if err != nil {
			if errors.Is(err, ErrLinkFailed) {
				stored = append(stored, result)
				response.Partial(c, http.StatusMultiStatus, "LINK_FAILED",
					"file stored but metadata link failed", gin.H{"files": stored})
				return
			}
			writeUploadError(c, err)
			return
		}
		stored = append(stored, result)
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Files uploaded successfully",
		"files":   stored,
	})
}

// DeleteFolder handles DELETE /folder/:slug. Removes the owner's whole
// directory and its asset records. Requires the X-API-Key header.
func (h *Handler) DeleteFolder(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.service.RemoveFolder(c.Request.Context(), slug); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "FOLDER_NOT_FOUND", "folder not found")
		case errors.Is(err, ErrPathEscape):
			response.Error(c, http.StatusBadRequest, "INVALID_SLUG", "invalid folder name")
		case errors.Is(err, ErrLinkFailed):
			response.Partial(c, http.StatusMultiStatus, "LINK_FAILED",
				"folder removed but asset records remain", gin.H{"folder": slug})
		default:
			response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "failed to delete folder")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Folder deleted successfully",
		"folder":  slug,
	})
}

// ServeFile handles GET /files/:slug/:filename.
func (h *Handler) ServeFile(c *gin.Context) {
	h.serve(c, false)
}

// ServeThumb handles GET /files/:slug/:filename/thumb. 404 when no
// thumbnail was generated for the file.
func (h *Handler) ServeThumb(c *gin.Context) {
	h.serve(c, true)
}

func (h *Handler) serve(c *gin.Context, thumb bool) {
	path, err := h.service.Resolve(c.Param("slug"), c.Param("filename"), thumb)
	if err != nil {
		// A traversal attempt looks the same as a missing file from the
		// outside; it just gets logged differently.
		if errors.Is(err, ErrPathEscape) || errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "FILE_NOT_FOUND", "file not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "failed to resolve file")
		return
	}
	c.File(path)
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func writeUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingSlug), errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, ErrRejectedType):
		response.Error(c, http.StatusBadRequest, "TYPE_REJECTED", err.Error())
	case errors.Is(err, ErrPathEscape):
		response.Error(c, http.StatusBadRequest, "INVALID_SLUG", "invalid slug or filename")
	default:
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "upload failed")
	}
}
