package api

import (
	"net/http"
	"time"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/pricing"
	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewPromoHandler(cat *catalog.Catalog) *PromoHandler {
	return &PromoHandler{catalog: cat, now: time.Now}
}

func (h *PromoHandler) Register(router *gin.RouterGroup) {
	router.POST("/promos/validate", h.validate)
}

type validatePromoRequest struct {
	Code         string `json:"code" binding:"required"`
	Amount       int    `json:"amount"`
	ServiceClass string `json:"service_class"`
}

// validate previews a promo resolution without booking anything. An
// ineligible code is a 200 with applied=false, never an error.
func (h *PromoHandler) validate(c *gin.Context) {
	var req validatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := pricing.ResolvePromo(h.catalog, req.Code, req.Amount, req.ServiceClass, h.now())
	c.JSON(http.StatusOK, gin.H{
		"code":     req.Code,
		"applied":  result.Applied,
		"reason":   result.Reason,
		"discount": result.Discount,
		"final":    req.Amount - result.Discount,
	})
}
