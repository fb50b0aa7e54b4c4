package api

import (
	"net/http"

	"github.com/connect237/busconnect/internal/service/routes"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service routes.RouteUseCase
}

func NewRouteHandler(service routes.RouteUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.POST("/search/advanced", h.search)
	router.POST("/search/multi-stop", h.multiStop)
}

func (h *RouteHandler) search(c *gin.Context) {
	var query routes.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": found, "total": len(found), "search_params": query})
}

func (h *RouteHandler) multiStop(c *gin.Context) {
	var query routes.MultiStopQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	found, err := h.service.MultiStopSearch(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": found, "total": len(found)})
}
