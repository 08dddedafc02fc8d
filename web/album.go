package web

import (
	"net/http"

	"flipbook/db"
	"flipbook/models"

	"github.com/gin-gonic/gin"
)

type viewerPhoto struct {
	ID           uint64 `json:"id"`
	URL          string `json:"url"`
	UploaderName string `json:"uploader_name,omitempty"`
}

// AlbumView is the public flipbook data: no token needed, read-only
func AlbumView(c *gin.Context) {
	album := models.Album{}
	err := db.Instance.Where("slug = ?", c.Param("slug")).First(&album).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}
	photos := []models.AlbumPhoto{}
	err = db.Instance.
		Where("album_id = ?", album.ID).
		Order("display_order ASC").
		Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	result := []viewerPhoto{}
	for _, p := range photos {
		result = append(result, viewerPhoto{
			ID:           p.ID,
			URL:          p.URL,
			UploaderName: p.UploaderName,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"title":        album.Title,
		"template":     album.Template,
		"wedding_date": album.WeddingDate,
		"music_url":    album.MusicURL,
		"photos":       result,
	})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
