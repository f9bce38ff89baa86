package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodgram/backend/internal/middleware"
	"github.com/foodgram/backend/internal/service"
)

// RecipeHandler serves recipe CRUD, the favorite/basket membership
// endpoints and the shopping-list download.
type RecipeHandler struct {
	recipes    service.IRecipeService
	membership service.IMembershipService
	images     service.IImageService
	auth       service.IAuthService
	pageSize   int
}

func NewRecipeHandler(recipes service.IRecipeService, membership service.IMembershipService, images service.IImageService, auth service.IAuthService, pageSize int) *RecipeHandler {
	return &RecipeHandler{
		recipes:    recipes,
		membership: membership,
		images:     images,
		auth:       auth,
		pageSize:   pageSize,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", middleware.OptionalAuth(h.auth), h.ListRecipes)
		recipes.GET("/download_basket", middleware.AuthMiddleware(h.auth), h.DownloadBasket)
		recipes.GET("/:id", middleware.OptionalAuth(h.auth), h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.auth), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.auth), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.auth), h.DeleteRecipe)
		recipes.POST("/:id/favorite", middleware.AuthMiddleware(h.auth), h.Favorite)
		recipes.DELETE("/:id/favorite", middleware.AuthMiddleware(h.auth), h.Unfavorite)
		recipes.POST("/:id/basket", middleware.AuthMiddleware(h.auth), h.AddToBasket)
		recipes.DELETE("/:id/basket", middleware.AuthMiddleware(h.auth), h.RemoveFromBasket)
	}
}

// ListRecipes translates the query parameters (tags, author,
// is_favorited, is_in_basket, page, limit) into a store-level filter.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := service.RecipeFilter{
		RequesterID: middleware.UserID(c),
		AuthorID:    uint(queryInt(c, "author", 0)),
		Favorited:   c.Query("is_favorited") == "1" || c.Query("is_favorited") == "true",
		InBasket:    c.Query("is_in_basket") == "1" || c.Query("is_in_basket") == "true",
		Page:        queryInt(c, "page", 1),
		PageSize:    queryInt(c, "limit", h.pageSize),
	}
	if tags := c.QueryArray("tags"); len(tags) > 0 {
		for _, t := range tags {
			for _, slug := range strings.Split(t, ",") {
				if slug != "" {
					filter.TagSlugs = append(filter.TagSlugs, slug)
				}
			}
		}
	}

	details, total, err := h.recipes.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]RecipeResponse, 0, len(details))
	for i := range details {
		results = append(results, newRecipeResponse(&details[i], false))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.recipes.Get(c.Request.Context(), recipeID, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(detail, false))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.images.Store(c.Request.Context(), req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Image = image

	detail, err := h.recipes.Create(c.Request.Context(), middleware.UserID(c), toRecipeInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRecipeResponse(detail, false))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.images.Store(c.Request.Context(), req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Image = image

	detail, err := h.recipes.Update(c.Request.Context(), recipeID, middleware.UserID(c), toRecipeInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(detail, false))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), recipeID, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) Favorite(c *gin.Context) {
	h.addMembership(c, h.membership.AddFavorite)
}

func (h *RecipeHandler) Unfavorite(c *gin.Context) {
	h.removeMembership(c, h.membership.RemoveFavorite)
}

func (h *RecipeHandler) AddToBasket(c *gin.Context) {
	h.addMembership(c, h.membership.AddToBasket)
}

func (h *RecipeHandler) RemoveFromBasket(c *gin.Context) {
	h.removeMembership(c, h.membership.RemoveFromBasket)
}

// DownloadBasket streams the aggregated shopping list as a plain-text
// attachment.
func (h *RecipeHandler) DownloadBasket(c *gin.Context) {
	items, err := h.membership.ShoppingList(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="basket.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(service.RenderShoppingList(items)))
}

func (h *RecipeHandler) addMembership(c *gin.Context, add func(ctx context.Context, userID, recipeID uint) (*service.RecipeSummary, error)) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := add(c.Request.Context(), middleware.UserID(c), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (h *RecipeHandler) removeMembership(c *gin.Context, remove func(ctx context.Context, userID, recipeID uint) error) {
	recipeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := remove(c.Request.Context(), middleware.UserID(c), recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
