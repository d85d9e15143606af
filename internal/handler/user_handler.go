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

type UserHandler struct {
	svc *service.AccrualService
}

func NewUserHandler(svc *service.AccrualService) *UserHandler {
	return &UserHandler{svc: svc}
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	if c.ContentType() != "application/json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type must be application/json"})
		return
	}
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields. Required fields are: name, email"})
		return
	}
	u, err := h.svc.CreateUser(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[users] create failed: email=%s err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Get returns user details including the current points balance.
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	u, err := h.svc.GetUser(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("user with ID %s not found", id)})
			return
		}
		log.Printf("[users] get failed: id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, u)
}
