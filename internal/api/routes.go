package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the card service endpoints.
func (a *API) RegisterRoutes(r *gin.Engine) {
	grp := r.Group("/api")
	{
		grp.GET("/health", a.health)
		grp.GET("/sizes", a.sizes)
		grp.GET("/tokens", a.tokens)
		grp.GET("/qr", a.qr)
		grp.POST("/card", a.renderCard)
	}
}
