package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flipbook/access"
	"flipbook/db"
	"flipbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	db.Instance = gdb
	models.Init()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout/session", CheckoutCreate)
	router.POST("/checkout/notification", CheckoutNotification)
	accessRouter := &access.Router{Base: router}
	accessRouter.GET("/album/:slug/admin", AlbumDashboard, access.Admin)
	accessRouter.PATCH("/album/:slug/settings", AlbumSettingsSave, access.Admin)
	accessRouter.GET("/album/:slug/upload-config", UploadConfig, access.Guest)
	accessRouter.GET("/album/:slug/upload-url", UploadNewURL, access.Guest)
	accessRouter.POST("/album/:slug/photos", PhotoUpload, access.Guest)
	accessRouter.DELETE("/album/:slug/photos/:id", PhotoDelete, access.Guest)
	accessRouter.POST("/album/:slug/photos/reorder", PhotoReorder, access.Admin)
	accessRouter.POST("/album/:slug/invites", InviteCreate, access.Admin)
	accessRouter.GET("/album/:slug/invites", InviteList, access.Admin)
	accessRouter.POST("/album/:slug/invites/:id", InviteUpdate, access.Admin)
	accessRouter.POST("/album/:slug/invites/:id/revoke", InviteRevoke, access.Admin)
	return router
}

func createTestAlbum(t *testing.T, maxPerGuest int) *models.Album {
	album := models.NewAlbum("Test Wedding", "classic", "owner@example.com", maxPerGuest)
	require.NoError(t, db.Instance.Create(&album).Error)
	return &album
}

func createTestInvite(t *testing.T, album *models.Album, maxPhotos int) *models.AlbumInvite {
	invite := models.NewAlbumInvite(album, "Guest", "", maxPhotos, false)
	invite.MaxPhotos = maxPhotos
	require.NoError(t, db.Instance.Create(&invite).Error)
	return &invite
}

func doJSON(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	result := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}
