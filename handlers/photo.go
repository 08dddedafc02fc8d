package handlers

import (
	"net/http"
	"strconv"

	"flipbook/access"
	"flipbook/db"
	"flipbook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PhotoUploadRequest struct {
	URL          string `json:"url" binding:"required"`
	AssetID      string `json:"asset_id"`
	UploaderName string `json:"uploader_name"`
}

type PhotoReorderRequest struct {
	PhotoIDs []uint64 `json:"photo_ids" binding:"required"`
}

// PhotoUpload records a photo the media widget has already stored. Quota is
// claimed atomically together with the append.
func PhotoUpload(c *gin.Context, acc access.Access) {
	if acc.Role == access.Guest && !acc.Album.GuestUploadsEnabled {
		c.JSON(http.StatusForbidden, NoGuestUploads)
		return
	}
	r := PhotoUploadRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	photo := models.AlbumPhoto{
		URL:          r.URL,
		AssetID:      r.AssetID,
		UploaderName: r.UploaderName,
	}
	if acc.Invite != nil {
		photo.UploadedByToken = &acc.Invite.InviteToken
		if photo.UploaderName == "" {
			photo.UploaderName = acc.Invite.GuestName
		}
	}
	err := models.AcceptUpload(db.Instance, acc.Album, acc.Invite, &photo)
	switch err {
	case nil:
	case models.ErrAlbumFull:
		c.JSON(http.StatusConflict, AlbumFullResponse)
		return
	case models.ErrInviteFull:
		c.JSON(http.StatusConflict, InviteFullResponse)
		return
	default:
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, PhotoInfo{
		ID:           photo.ID,
		URL:          photo.URL,
		UploaderName: photo.UploaderName,
		Mine:         acc.Invite != nil,
		DisplayOrder: photo.DisplayOrder,
	})
}

// PhotoDelete removes a photo; guests may only remove their own uploads.
// Deleting an already-deleted photo is a plain 404, counters stay untouched.
func PhotoDelete(c *gin.Context, acc access.Access) {
	photoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "bad photo id"})
		return
	}
	photo := models.AlbumPhoto{}
	err = db.Instance.
		Where("id = ? and album_id = ?", photoID, acc.Album.ID).
		First(&photo).Error
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if acc.Role == access.Guest {
		if photo.UploadedByToken == nil || *photo.UploadedByToken != acc.Invite.InviteToken {
			c.JSON(http.StatusForbidden, ForbiddenResponse)
			return
		}
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.AlbumPhoto{}, photo.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 1 && photo.UploadedByToken != nil {
			return models.ReleaseUploadSlot(tx, acc.Album.ID, *photo.UploadedByToken)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// PhotoReorder takes the full ordering and assigns display_order = index
func PhotoReorder(c *gin.Context, acc access.Access) {
	r := PhotoReorderRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: err.Error()})
		return
	}
	if err := models.ReorderPhotos(db.Instance, acc.Album.ID, r.PhotoIDs); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
