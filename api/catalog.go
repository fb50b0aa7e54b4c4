package api

import (
	"net/http"
	"time"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only reference data.
type CatalogHandler struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat, now: time.Now}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.root)
	router.GET("/cities", h.cities)
	router.GET("/cities/popular", h.popularCities)
	router.GET("/service-classes", h.serviceClasses)
	router.GET("/baggage/options", h.baggageOptions)
	router.GET("/companies", h.companies)
	router.GET("/offers", h.offers)
}

func (h *CatalogHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Connect237 API", "version": "2.0"})
}

func (h *CatalogHandler) cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.catalog.Cities()})
}

func (h *CatalogHandler) popularCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"popular_cities": h.catalog.MajorCities(10)})
}

func (h *CatalogHandler) serviceClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service_classes": h.catalog.ServiceClasses()})
}

func (h *CatalogHandler) baggageOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"baggage_options": h.catalog.BaggageOptions()})
}

func (h *CatalogHandler) companies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": h.catalog.Companies()})
}

type offer struct {
	Code              string   `json:"code"`
	Description       string   `json:"description"`
	DiscountPercent   int      `json:"discount_percent,omitempty"`
	DiscountAmount    int      `json:"discount_amount,omitempty"`
	MinAmount         int      `json:"min_amount"`
	ApplicableClasses []string `json:"applicable_classes,omitempty"`
	ValidUntil        string   `json:"valid_until"`
}

// offers lists the promo codes that are still redeemable.
func (h *CatalogHandler) offers(c *gin.Context) {
	now := h.now()
	active := []offer{}
	for _, p := range h.catalog.PromoCodes() {
		if now.After(p.ValidUntil) {
			continue
		}
		active = append(active, offer{
			Code:              p.Code,
			Description:       p.Description,
			DiscountPercent:   p.DiscountPercent,
			DiscountAmount:    p.DiscountAmount,
			MinAmount:         p.MinAmount,
			ApplicableClasses: p.ApplicableClasses,
			ValidUntil:        p.ValidUntil.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"offers": active, "total": len(active)})
}
