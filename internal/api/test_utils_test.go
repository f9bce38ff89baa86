package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/api"
	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/models"
	"github.com/foodgram/backend/internal/router"
	"github.com/foodgram/backend/internal/service"
)

// setupTestAPI wires the full router over an in-memory SQLite store, the
// same composition main performs minus Redis and S3.
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	auth := service.NewAuthService(db, "test-secret", nil)
	recipes := service.NewRecipeService(db, service.RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	membership := service.NewMembershipService(db)
	follows := service.NewFollowService(db)
	images := service.NewImageService(nil, t.TempDir())

	engine := router.SetupRouter(
		api.NewAuthHandler(auth),
		api.NewUserHandler(auth, follows),
		api.NewCatalogHandler(db),
		api.NewRecipeHandler(recipes, membership, images, auth, 6),
	)
	return engine, db
}

// performRequest runs one request through the router. body is marshalled
// to JSON when non-nil; token, when set, goes into the bearer header.
func performRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the public endpoints and
// returns the issued token with the user's id.
func registerAndLogin(t *testing.T, engine *gin.Engine, username string) (string, uint) {
	t.Helper()

	w := performRequest(t, engine, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username":   username,
		"email":      username + "@example.com",
		"first_name": "Test",
		"last_name":  "User",
		"password":   "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var registered struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))

	w = performRequest(t, engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    username + "@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var logged struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	require.NotEmpty(t, logged.Token)

	return logged.Token, registered.ID
}

// seedCatalog inserts reference ingredients and tags directly.
func seedCatalog(t *testing.T, db *gorm.DB) ([]models.Ingredient, []models.Tag) {
	t.Helper()

	ingredients := []models.Ingredient{
		{Name: "flour", Unit: "g"},
		{Name: "milk", Unit: "ml"},
	}
	require.NoError(t, db.Create(&ingredients).Error)

	tags := []models.Tag{
		{Name: "Dinner", Slug: "dinner", Color: "#00ff00"},
		{Name: "Lunch", Slug: "lunch", Color: "#0000ff"},
	}
	require.NoError(t, db.Create(&tags).Error)

	return ingredients, tags
}

// createRecipeViaAPI posts a minimal valid recipe and returns its id.
func createRecipeViaAPI(t *testing.T, engine *gin.Engine, token, name string, ingredientID, tagID uint) uint {
	t.Helper()

	w := performRequest(t, engine, http.MethodPost, "/api/v1/recipes", gin.H{
		"name":         name,
		"description":  "test recipe",
		"cooking_time": 15,
		"tags":         []uint{tagID},
		"ingredients":  []gin.H{{"id": ingredientID, "amount": 100}},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	return created.ID
}

func recipePath(recipeID uint, suffix string) string {
	return fmt.Sprintf("/api/v1/recipes/%d%s", recipeID, suffix)
}
