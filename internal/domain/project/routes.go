package project

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the read-only project routes.
func RegisterPublicRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/dev-projects", h.List)
	r.GET("/dev-projects/:slug", h.Get)
}

// RegisterProtectedRoutes registers the mutating project routes; the
// caller puts the group behind the API-key middleware.
func RegisterProtectedRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/dev-projects", h.Create)
	r.PUT("/dev-projects/:slug", h.Update)
	r.DELETE("/dev-projects/:slug", h.Delete)
}
