package album

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the read-only album routes.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/albums", h.List)
	r.GET("/albums/:slug", h.Get)
}

// RegisterProtectedRoutes registers the mutating album routes; the
// caller puts the group behind the API-key middleware.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/albums", h.Create)
	r.POST("/albums/with-files", h.CreateWithFiles)
	r.PUT("/albums/:slug", h.Update)
	r.DELETE("/albums/:slug", h.Delete)
	r.PUT("/albums/:slug/photos", h.AddPhotos)
	r.DELETE("/albums/:slug/photos", h.RemovePhoto)
}
