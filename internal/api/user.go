package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodgram/backend/internal/middleware"
	"github.com/foodgram/backend/internal/service"
)

// UserHandler serves user profiles, the follow relationship and the
// follow listing.
type UserHandler struct {
	auth    service.IAuthService
	follows service.IFollowService
}

func NewUserHandler(auth service.IAuthService, follows service.IFollowService) *UserHandler {
	return &UserHandler{auth: auth, follows: follows}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", middleware.OptionalAuth(h.auth), h.ListUsers)
		users.GET("/me", middleware.AuthMiddleware(h.auth), h.Me)
		users.GET("/follows", middleware.AuthMiddleware(h.auth), h.ListFollowing)
		users.GET("/:id", middleware.OptionalAuth(h.auth), h.GetUser)
		users.POST("/:id/follow", middleware.AuthMiddleware(h.auth), h.Follow)
		users.DELETE("/:id/follow", middleware.AuthMiddleware(h.auth), h.Unfollow)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	requesterID := middleware.UserID(c)
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		subscribed, err := h.follows.IsSubscribed(c.Request.Context(), requesterID, u.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, newUserResponse(u, subscribed))
	}

	c.JSON(http.StatusOK, gin.H{"users": out})
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.auth.GetUserByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user, false))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.auth.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	subscribed, err := h.follows.IsSubscribed(c.Request.Context(), middleware.UserID(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(*user, subscribed))
}

func (h *UserHandler) Follow(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	author, err := h.follows.Follow(c.Request.Context(), middleware.UserID(c), targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newFollowedAuthorResponse(author))
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.follows.Unfollow(c.Request.Context(), middleware.UserID(c), targetID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) ListFollowing(c *gin.Context) {
	recipesLimit := queryInt(c, "recipes_limit", 0)

	authors, err := h.follows.ListFollowing(c.Request.Context(), middleware.UserID(c), recipesLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]FollowedAuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, newFollowedAuthorResponse(&authors[i]))
	}

	c.JSON(http.StatusOK, gin.H{"results": out})
}
