package handlers

import (
	"net/http"

	"flipbook/access"
	"flipbook/db"
	"flipbook/models"

	"github.com/gin-gonic/gin"
)

type PhotoInfo struct {
	ID           uint64 `json:"id"`
	URL          string `json:"url"`
	UploaderName string `json:"uploader_name,omitempty"`
	Mine         bool   `json:"mine,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

type InviteInfo struct {
	ID             uint64 `json:"id"`
	GuestName      string `json:"guest_name"`
	GuestEmail     string `json:"guest_email,omitempty"`
	PhotosUploaded int    `json:"photos_uploaded"`
	MaxPhotos      int    `json:"max_photos"`
	IsGeneral      bool   `json:"is_general"`
	IsActive       bool   `json:"is_active"`
	ShareURL       string `json:"share_url"`
}

type AlbumSettingsRequest struct {
	WeddingDate         *string `json:"wedding_date"`
	MusicURL            *string `json:"music_url"`
	GuestUploadsEnabled *bool   `json:"guest_uploads_enabled"`
}

func loadPhotoInfos(c *gin.Context, acc access.Access) []PhotoInfo {
	photos := []models.AlbumPhoto{}
	err := db.Instance.
		Where("album_id = ?", acc.Album.ID).
		Order("display_order ASC").
		Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return nil
	}
	result := []PhotoInfo{}
	for _, p := range photos {
		info := PhotoInfo{
			ID:           p.ID,
			URL:          p.URL,
			UploaderName: p.UploaderName,
			DisplayOrder: p.DisplayOrder,
		}
		if acc.Invite != nil && p.UploadedByToken != nil && *p.UploadedByToken == acc.Invite.InviteToken {
			info.Mine = true
		}
		result = append(result, info)
	}
	return result
}

// AlbumDashboard returns everything the admin UI needs in one call
func AlbumDashboard(c *gin.Context, acc access.Access) {
	photos := loadPhotoInfos(c, acc)
	if photos == nil {
		return
	}
	invites := []models.AlbumInvite{}
	err := db.Instance.
		Where("album_id = ?", acc.Album.ID).
		Order("created_at ASC").
		Find(&invites).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	inviteInfos := []InviteInfo{}
	for _, i := range invites {
		inviteInfos = append(inviteInfos, newInviteInfo(&i, acc.Album.Slug))
	}
	remaining, err := models.AlbumRemaining(db.Instance, acc.Album)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slug":                  acc.Album.Slug,
		"title":                 acc.Album.Title,
		"template":              acc.Album.Template,
		"wedding_date":          acc.Album.WeddingDate,
		"music_url":             acc.Album.MusicURL,
		"guest_uploads_enabled": acc.Album.GuestUploadsEnabled,
		"max_photos_per_guest":  acc.Album.MaxPhotosPerGuest,
		"remaining_capacity":    remaining,
		"view_url":              acc.Album.ViewURL(),
		"photos":                photos,
		"invites":               inviteInfos,
	})
}

// AlbumSettingsSave patches the fields the admin UI can edit
func AlbumSettingsSave(c *gin.Context, acc access.Access) {
	r := AlbumSettingsRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if r.WeddingDate != nil {
		updates["wedding_date"] = *r.WeddingDate
	}
	if r.MusicURL != nil {
		updates["music_url"] = *r.MusicURL
	}
	if r.GuestUploadsEnabled != nil {
		updates["guest_uploads_enabled"] = *r.GuestUploadsEnabled
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, OKResponse)
		return
	}
	result := db.Instance.Model(&models.Album{}).
		Where("id = ?", acc.Album.ID).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
