package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/connect237/busconnect/internal/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promoContext(t *testing.T, payload interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(payload)
	c.Request = httptest.NewRequest("POST", "/promos/validate", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func newPromoHandler() *PromoHandler {
	h := NewPromoHandler(catalog.Default())
	h.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return h
}

func TestPromoHandler_validate_applied(t *testing.T) {
	handler := newPromoHandler()
	c, w := promoContext(t, validatePromoRequest{Code: "WEEKEND15", Amount: 20000, ServiceClass: "economy"})

	handler.validate(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Applied  bool   `json:"applied"`
		Discount int    `json:"discount"`
		Final    int    `json:"final"`
		Reason   string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Applied)
	assert.Equal(t, 3000, got.Discount)
	assert.Equal(t, 17000, got.Final)
	assert.Empty(t, got.Reason)
}

func TestPromoHandler_validate_ineligibleIsStillOK(t *testing.T) {
	handler := newPromoHandler()
	c, w := promoContext(t, validatePromoRequest{Code: "WEEKEND15", Amount: 1000, ServiceClass: "economy"})

	handler.validate(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Applied  bool   `json:"applied"`
		Discount int    `json:"discount"`
		Reason   string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Applied)
	assert.Zero(t, got.Discount)
	assert.Equal(t, "below_minimum_amount", got.Reason)
}

func TestPromoHandler_validate_unknownCode(t *testing.T) {
	handler := newPromoHandler()
	c, w := promoContext(t, validatePromoRequest{Code: "NOPE", Amount: 20000})

	handler.validate(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Applied bool   `json:"applied"`
		Reason  string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Applied)
	assert.Equal(t, "unknown_code", got.Reason)
}

func TestPromoHandler_validate_missingCode(t *testing.T) {
	handler := newPromoHandler()
	c, w := promoContext(t, map[string]interface{}{"amount": 20000})

	handler.validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
