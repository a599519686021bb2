package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fbrandt/pigeon/internal/database"
	"github.com/fbrandt/pigeon/internal/handlers/dto"
	"github.com/fbrandt/pigeon/internal/models"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

// CreateUser registers a contact. Users are immutable after signup.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.User.Username) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"username": []string{"can't be blank"}})
		return
	}

	user := &models.User{
		Username:  req.User.Username,
		AvatarURL: req.User.AvatarURL,
	}

	if err := h.db.SaveUser(user); err != nil {
		if existing, findErr := h.db.FindUserByUsername(req.User.Username); findErr == nil && existing != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"username": []string{"has already been taken"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, formatUserResponse(*user))
}

// ListUsers returns every contact, for the contact picker.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	result := make([]dto.UserResponse, len(users))
	for i, user := range users {
		result[i] = formatUserResponse(user)
	}

	c.JSON(http.StatusOK, result)
}
