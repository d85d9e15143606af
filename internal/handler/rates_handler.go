package handler

import (
	"errors"
	"log"
	"net/http"

	"loyalty/internal/service"

	"github.com/gin-gonic/gin"
)

type RatesHandler struct {
	svc *service.AccrualService
}

func NewRatesHandler(svc *service.AccrualService) *RatesHandler {
	return &RatesHandler{svc: svc}
}

// GetRules returns the current accrual rules.
func (h *RatesHandler) GetRules(c *gin.Context) {
	rt, err := h.svc.GetRateTable()
	if err != nil {
		log.Printf("[rates] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load point rules"})
		return
	}
	c.JSON(http.StatusOK, rt)
}

type SetPartnerRateRequest struct {
	PartnerID  string   `json:"partner_id" binding:"required"`
	PointsRate *float64 `json:"points_rate" binding:"required"`
}

// SetPartnerRate upserts a single partner's rate and responds with the
// updated rules.
func (h *RatesHandler) SetPartnerRate(c *gin.Context) {
	if c.ContentType() != "application/json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type must be application/json"})
		return
	}
	var req SetPartnerRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields. Required fields are: partner_id, points_rate"})
		return
	}
	rt, err := h.svc.SetPartnerRate(req.PartnerID, *req.PointsRate)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[rates] set failed: partner=%s err=%v", req.PartnerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update partner rate"})
		return
	}
	c.JSON(http.StatusOK, rt)
}
