package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"docqa/internal/domain"
	"docqa/internal/usecase"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.accounts.Register(req.Username, req.Email, req.Password)
	if err != nil {
		var inputErr *usecase.InputError
		switch {
		case errors.As(err, &inputErr):
			abortWithError(c, http.StatusBadRequest, inputErr.Reason)
		case errors.Is(err, domain.ErrUserExists):
			abortWithError(c, http.StatusBadRequest, "User already exists")
		default:
			log.Error().Err(err).Msg("registration failed")
			abortWithError(c, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := s.accounts.Login(req.Email, req.Password)
	if err != nil {
		var inputErr *usecase.InputError
		switch {
		case errors.As(err, &inputErr):
			abortWithError(c, http.StatusBadRequest, inputErr.Reason)
		case errors.Is(err, domain.ErrUserNotFound):
			abortWithError(c, http.StatusUnauthorized, "User not found")
		case errors.Is(err, domain.ErrInvalidPassword):
			abortWithError(c, http.StatusUnauthorized, "Invalid password")
		default:
			log.Error().Err(err).Msg("login failed")
			abortWithError(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (s *Server) profile(c *gin.Context) {
	user, err := s.accounts.Profile(currentUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else {
			log.Error().Err(err).Msg("profile lookup failed")
			abortWithError(c, http.StatusInternalServerError, "Failed to get user profile")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
