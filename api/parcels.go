package api

import (
	"net/http"

	"github.com/connect237/busconnect/internal/domain"
	"github.com/connect237/busconnect/internal/service/parcels"
	"github.com/gin-gonic/gin"
)

type ParcelHandler struct {
	service parcels.ParcelUseCase
}

func NewParcelHandler(service parcels.ParcelUseCase) *ParcelHandler {
	return &ParcelHandler{service: service}
}

func (h *ParcelHandler) Register(router *gin.RouterGroup) {
	router.POST("/parcels", h.create)
	router.GET("/parcels/track/:code", h.track)
	router.PUT("/parcels/:code/status", h.updateStatus)
}

func (h *ParcelHandler) create(c *gin.Context) {
	var req parcels.BookParcelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parcel, err := h.service.BookParcel(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, parcel)
}

func (h *ParcelHandler) track(c *gin.Context) {
	parcel, err := h.service.TrackParcel(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}

type parcelStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ParcelHandler) updateStatus(c *gin.Context) {
	var req parcelStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parcel, err := h.service.UpdateStatus(c.Request.Context(), c.Param("code"), domain.ParcelStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}
