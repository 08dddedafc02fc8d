package handlers

import (
	"net/http"

	"flipbook/access"
	"flipbook/db"
	"flipbook/models"
	"flipbook/uploads"

	"github.com/gin-gonic/gin"
)

func remainingFor(c *gin.Context, acc access.Access) (int, bool) {
	albumRemaining, err := models.AlbumRemaining(db.Instance, acc.Album)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return 0, false
	}
	return models.EffectiveRemaining(albumRemaining, acc.Invite), true
}

// UploadConfig returns the client-side widget configuration, with the file
// count limit computed from the caller's remaining quota
func UploadConfig(c *gin.Context, acc access.Access) {
	if acc.Role == access.Guest && !acc.Album.GuestUploadsEnabled {
		c.JSON(http.StatusForbidden, NoGuestUploads)
		return
	}
	remaining, ok := remainingFor(c, acc)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, uploads.ConfigFor(acc.Album, remaining))
}

// UploadNewURL hands out one presigned destination for the widget
func UploadNewURL(c *gin.Context, acc access.Access) {
	if acc.Role == access.Guest && !acc.Album.GuestUploadsEnabled {
		c.JSON(http.StatusForbidden, NoGuestUploads)
		return
	}
	remaining, ok := remainingFor(c, acc)
	if !ok {
		return
	}
	if remaining == 0 {
		if acc.Invite != nil && acc.Invite.Remaining() == 0 {
			c.JSON(http.StatusConflict, InviteFullResponse)
		} else {
			c.JSON(http.StatusConflict, AlbumFullResponse)
		}
		return
	}
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, Response{Error: "name is required"})
		return
	}
	url, err := uploads.NewUploadURL(acc.Album.Slug, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, UpstreamErrResponse)
		return
	}
	c.JSON(http.StatusOK, url)
}
