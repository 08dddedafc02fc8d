package handlers

import (
	"net/http"
	"strconv"

	"flipbook/access"
	"flipbook/db"
	"flipbook/email"
	"flipbook/models"

	"github.com/gin-gonic/gin"
)

type InviteCreateRequest struct {
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	MaxPhotos  int    `json:"max_photos"`
	IsGeneral  bool   `json:"is_general"`
	SendEmail  bool   `json:"send_email"`
}

type InviteUpdateRequest struct {
	GuestName  *string `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	MaxPhotos  *int    `json:"max_photos"`
}

func newInviteInfo(invite *models.AlbumInvite, albumSlug string) InviteInfo {
	return InviteInfo{
		ID:             invite.ID,
		GuestName:      invite.GuestName,
		GuestEmail:     invite.GuestEmail,
		PhotosUploaded: invite.PhotosUploaded,
		MaxPhotos:      invite.MaxPhotos,
		IsGeneral:      invite.IsGeneral,
		IsActive:       invite.IsActive,
		ShareURL:       invite.ShareURL(albumSlug),
	}
}

func InviteCreate(c *gin.Context, acc access.Access) {
	r := InviteCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	invite := models.NewAlbumInvite(acc.Album, r.GuestName, r.GuestEmail, r.MaxPhotos, r.IsGeneral)
	if err := db.Instance.Create(&invite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	// Best-effort: a failed email never rolls back the invite
	if r.SendEmail && invite.GuestEmail != "" {
		go email.SendGuestInvite(invite.GuestEmail, invite.GuestName, acc.Album.Title, invite.ShareURL(acc.Album.Slug))
	}
	c.JSON(http.StatusOK, newInviteInfo(&invite, acc.Album.Slug))
}

func InviteList(c *gin.Context, acc access.Access) {
	invites := []models.AlbumInvite{}
	err := db.Instance.
		Where("album_id = ?", acc.Album.ID).
		Order("created_at ASC").
		Find(&invites).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []InviteInfo{}
	for _, i := range invites {
		result = append(result, newInviteInfo(&i, acc.Album.Slug))
	}
	c.JSON(http.StatusOK, result)
}

func findInvite(c *gin.Context, acc access.Access) *models.AlbumInvite {
	inviteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "bad invite id"})
		return nil
	}
	invite := models.AlbumInvite{}
	err = db.Instance.
		Where("id = ? and album_id = ?", inviteID, acc.Album.ID).
		First(&invite).Error
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return nil
	}
	return &invite
}

// InviteRevoke flips is_active off; the row is kept so history and photo
// attribution survive. Safe to call twice.
func InviteRevoke(c *gin.Context, acc access.Access) {
	invite := findInvite(c, acc)
	if invite == nil {
		return
	}
	err := db.Instance.Model(invite).UpdateColumn("is_active", false).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	invite.IsActive = false
	c.JSON(http.StatusOK, newInviteInfo(invite, acc.Album.Slug))
}

func InviteUpdate(c *gin.Context, acc access.Access) {
	invite := findInvite(c, acc)
	if invite == nil {
		return
	}
	r := InviteUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if r.GuestName != nil {
		updates["guest_name"] = *r.GuestName
	}
	if r.GuestEmail != nil {
		updates["guest_email"] = *r.GuestEmail
	}
	if r.MaxPhotos != nil {
		updates["max_photos"] = acc.Album.ClampInvitePhotos(*r.MaxPhotos)
	}
	if len(updates) > 0 {
		if err := db.Instance.Model(invite).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, DBError1Response)
			return
		}
	}
	db.Instance.First(invite, invite.ID)
	c.JSON(http.StatusOK, newInviteInfo(invite, acc.Album.Slug))
}
