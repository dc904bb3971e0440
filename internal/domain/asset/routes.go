package asset

import "github.com/gin-gonic/gin"

// RegisterProtectedRoutes registers the mutating file routes; the caller
// puts the group behind the API-key middleware.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/upload", h.Upload)
	r.DELETE("/folder/:slug", h.DeleteFolder)
}

// RegisterFileRoutes registers the public static file routes. Every read
// goes through the store's resolver so the traversal guard applies.
func RegisterFileRoutes(r *gin.RouterGroup, h *Handler) {
	files := r.Group(URLBase)
	{
		files.GET("/:slug/:filename", h.ServeFile)
		files.GET("/:slug/:filename/thumb", h.ServeThumb)
	}
}
