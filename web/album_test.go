package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flipbook/db"
	"flipbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gin.Engine {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	db.Instance = gdb
	models.Init()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/flipbook/:slug", AlbumView)
	return router
}

func TestAlbumView(t *testing.T) {
	router := setupTest(t)
	album := models.NewAlbum("Anna & Ben", "rustic", "anna@example.com", 100)
	require.NoError(t, db.Instance.Create(&album).Error)
	for i, url := range []string{"https://cdn/1.jpg", "https://cdn/2.jpg"} {
		require.NoError(t, db.Instance.Create(&models.AlbumPhoto{
			AlbumID: album.ID, URL: url, DisplayOrder: 1 - i, // inserted out of order
		}).Error)
	}

	req, _ := http.NewRequest("GET", "/flipbook/"+album.Slug, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Anna & Ben", body["title"])
	assert.Equal(t, "rustic", body["template"])
	photos := body["photos"].([]interface{})
	require.Len(t, photos, 2)
	// Sorted by display order, not insertion
	first := photos[0].(map[string]interface{})
	assert.Equal(t, "https://cdn/2.jpg", first["url"])
	// The admin token never leaks into the public payload
	assert.NotContains(t, w.Body.String(), album.AdminToken)
}

func TestAlbumView_UnknownSlug(t *testing.T) {
	router := setupTest(t)

	req, _ := http.NewRequest("GET", "/flipbook/no-such-album", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
