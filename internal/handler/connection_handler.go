package handler

import (
	"errors"
	"net/http"

	"linkup/backend/internal/auth"
	"linkup/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConnectionHandler serves the follow graph and the connection-request
// lifecycle.
type ConnectionHandler struct {
	relationships *store.RelationshipStore
	requests      *store.RequestStore
}

func NewConnectionHandler(relationships *store.RelationshipStore, requests *store.RequestStore) *ConnectionHandler {
	return &ConnectionHandler{relationships: relationships, requests: requests}
}

// List godoc
// @Summary      List connections
// @Description  Returns the users the caller follows.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Relationship
// @Failure      401  {object}  ErrorResponse
// @Router       /connections [get]
func (h *ConnectionHandler) List(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	rels, err := h.relationships.ListFollowing(viewerID)
	if err != nil {
		internalError(c, "failed to list connections", err)
		return
	}

	c.JSON(http.StatusOK, rels)
}

// Stats godoc
// @Summary      Connection statistics
// @Description  Returns the caller's following and follower counts.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  store.Stats
// @Failure      401  {object}  ErrorResponse
// @Router       /connections/stats [get]
func (h *ConnectionHandler) Stats(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	stats, err := h.relationships.Stats(viewerID)
	if err != nil {
		internalError(c, "failed to compute connection stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Suggestions godoc
// @Summary      Suggested connections
// @Description  Returns up to five users the caller does not follow yet.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Profile
// @Failure      401  {object}  ErrorResponse
// @Router       /connections/suggestions [get]
func (h *ConnectionHandler) Suggestions(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	profiles, err := h.relationships.Suggest(viewerID, store.DefaultSuggestionLimit)
	if err != nil {
		internalError(c, "failed to fetch suggestions", err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// Follow godoc
// @Summary      Follow a user
// @Description  Creates a follow edge from the caller to the given user.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        followingId  path  string  true  "User ID to follow"
// @Success      201  {object}  models.Relationship
// @Failure      400  {object}  ErrorResponse "Self-follow or duplicate"
// @Failure      401  {object}  ErrorResponse
// @Router       /connections/{followingId} [post]
func (h *ConnectionHandler) Follow(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	followingID, err := uuid.Parse(c.Param("followingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if viewerID == followingID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot connect with yourself"})
		return
	}

	rel, err := h.relationships.Follow(viewerID, followingID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRelationship) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Connection already exists"})
			return
		}
		internalError(c, "failed to create connection", err)
		return
	}

	c.JSON(http.StatusCreated, rel)
}

// Unfollow godoc
// @Summary      Remove a connection
// @Description  Deletes the follow edge from the caller to the given user. Removing a non-existent edge succeeds.
// @Tags         connections
// @Security     BearerAuth
// @Param        followingId  path  string  true  "User ID to unfollow"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /connections/{followingId} [delete]
func (h *ConnectionHandler) Unfollow(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	followingID, err := uuid.Parse(c.Param("followingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.relationships.Unfollow(viewerID, followingID); err != nil {
		internalError(c, "failed to remove connection", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRequests godoc
// @Summary      List pending requests
// @Description  Returns the caller's incoming pending connection requests.
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.ConnectionRequest
// @Failure      401  {object}  ErrorResponse
// @Router       /connections/requests [get]
func (h *ConnectionHandler) ListRequests(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	reqs, err := h.requests.ListPending(viewerID)
	if err != nil {
		internalError(c, "failed to list connection requests", err)
		return
	}

	c.JSON(http.StatusOK, reqs)
}

// SendRequest godoc
// @Summary      Send a connection request
// @Description  Creates a pending request from the caller to the given user.
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Receiver user ID"
// @Success      201  {object}  models.ConnectionRequest
// @Failure      400  {object}  ErrorResponse "Self-request or duplicate"
// @Failure      401  {object}  ErrorResponse
// @Router       /connections/requests/{id} [post]
func (h *ConnectionHandler) SendRequest(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	receiverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if viewerID == receiverID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send connection request to yourself"})
		return
	}

	req, err := h.requests.Send(viewerID, receiverID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Connection request already exists"})
			return
		}
		internalError(c, "failed to send connection request", err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// AcceptRequest godoc
// @Summary      Accept a connection request
// @Description  Accepts a pending request addressed to the caller and creates the follow edge in the same transaction.
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Request ID"
// @Success      200  {object}  models.Relationship
// @Failure      400  {object}  ErrorResponse "Edge already exists"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not actionable"
// @Router       /connections/requests/{id}/accept [post]
func (h *ConnectionHandler) AcceptRequest(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	rel, err := h.requests.Accept(requestID, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRequestNotActionable):
			c.JSON(http.StatusNotFound, gin.H{"error": "Connection request not found or already processed"})
		case errors.Is(err, store.ErrDuplicateRelationship):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Connection already exists"})
		default:
			internalError(c, "failed to accept connection request", err)
		}
		return
	}

	c.JSON(http.StatusOK, rel)
}

// RejectRequest godoc
// @Summary      Reject a connection request
// @Description  Rejects a pending request addressed to the caller.
// @Tags         requests
// @Security     BearerAuth
// @Param        id  path  string  true  "Request ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not actionable"
// @Router       /connections/requests/{id}/reject [post]
func (h *ConnectionHandler) RejectRequest(c *gin.Context) {
	viewerID, _ := auth.UserID(c)

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := h.requests.Reject(requestID, viewerID); err != nil {
		if errors.Is(err, store.ErrRequestNotActionable) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Connection request not found or already processed"})
			return
		}
		internalError(c, "failed to reject connection request", err)
		return
	}

	c.Status(http.StatusNoContent)
}
