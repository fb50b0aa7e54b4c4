package api

import (
	"net/http"
	"strconv"

	"github.com/connect237/busconnect/internal/domain"
	"github.com/connect237/busconnect/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/quotes", h.quote)
	router.POST("/bookings", h.create)
	router.GET("/bookings/:reference", h.get)
	router.GET("/bookings/user/:userID", h.listByUser)
	router.DELETE("/bookings/:reference", h.cancel)
	router.POST("/bookings/:reference/rate", h.rate)
	router.GET("/track/:reference", h.track)
	router.GET("/analytics/popular-routes", h.popularRoutes)
}

func (h *BookingHandler) quote(c *gin.Context) {
	var req booking.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.service.QuoteTrip(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req booking.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *BookingHandler) listByUser(c *gin.Context) {
	bookings, err := h.service.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		writeError(c, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": len(bookings)})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	cancelled, err := h.service.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

type rateRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func (h *BookingHandler) rate(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.RateBooking(c.Request.Context(), c.Param("reference"), req.Rating, req.Review); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating submitted"})
}

func (h *BookingHandler) track(c *gin.Context) {
	info, err := h.service.Track(c.Request.Context(), c.Param("reference"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *BookingHandler) popularRoutes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	stats, err := h.service.PopularRoutes(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"popular_routes": stats})
}
