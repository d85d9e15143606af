package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"loyalty/internal/repository"
	"loyalty/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	svc *service.AccrualService
}

func NewTransactionHandler(svc *service.AccrualService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Amount and rate use pointers so zero values still pass the required
// check; only field absence is rejected.
type RecordTransactionRequest struct {
	UserID               string   `json:"user_id" binding:"required"`
	PartnerID            string   `json:"partner_id" binding:"required"`
	Amount               *float64 `json:"amount" binding:"required"`
	TransactionReference string   `json:"transaction_reference" binding:"required"`
}

// Record credits points for a purchase and returns the transaction with
// the updated balance.
func (h *TransactionHandler) Record(c *gin.Context) {
	if c.ContentType() != "application/json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type must be application/json"})
		return
	}
	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields. Required fields are: user_id, partner_id, amount, transaction_reference"})
		return
	}
	res, err := h.svc.RecordTransaction(req.UserID, req.PartnerID, *req.Amount, req.TransactionReference)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user with ID %s not found", req.UserID)})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[transactions] record failed: user=%s partner=%s err=%v", req.UserID, req.PartnerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record transaction"})
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListForUser returns all of a user's transactions in recording order.
func (h *TransactionHandler) ListForUser(c *gin.Context) {
	userID := c.Param("id")
	list, err := h.svc.GetUserTransactions(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user with ID %s not found", userID)})
			return
		}
		log.Printf("[transactions] list failed: user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, list)
}
