package handler

import (
	"errors"
	"net/http"
	"strconv"

	"linkup/backend/internal/auth"
	"linkup/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// UserHandler serves profile lookups and user search.
type UserHandler struct {
	users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the profile of the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Profile
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	profile, err := h.users.FindByID(viewerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		internalError(c, "failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Search godoc
// @Summary      Search for users
// @Description  Searches for users by username with pagination.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query for username"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[models.Profile]
// @Failure      401   {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) Search(c *gin.Context) {
	viewerID, _ := auth.UserID(c)
	query := c.Query("q")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	profiles, total, err := h.users.Search(viewerID, query, limit, (page-1)*limit)
	if err != nil {
		internalError(c, "failed to search users", err)
		return
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(profiles, total, page, limit))
}

