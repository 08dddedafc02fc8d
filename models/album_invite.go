package models

import (
	"flipbook/config"
	"flipbook/utils"
)

const GeneralInviteName = "Wedding guests"

type AlbumInvite struct {
	ID             uint64 `gorm:"primaryKey"`
	CreatedAt      int64
	AlbumID        uint64 `gorm:"not null;index"`
	Album          Album  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	InviteToken    string `gorm:"type:varchar(100);index:uniq_invite_token,unique"`
	GuestName      string `gorm:"type:varchar(200)"`
	GuestEmail     string `gorm:"type:varchar(200)"`
	PhotosUploaded int    `gorm:"not null;default:0"`
	MaxPhotos      int    `gorm:"not null"`
	IsGeneral      bool   `gorm:"not null;default:false"`
	// Soft-revocation flag - revoked invites stay in the table so uploaded
	// photos remain attributable
	IsActive bool `gorm:"not null;default:true"`
}

func NewAlbumInvite(album *Album, guestName, guestEmail string, maxPhotos int, isGeneral bool) AlbumInvite {
	if guestName == "" && isGeneral {
		guestName = GeneralInviteName
	}
	return AlbumInvite{
		AlbumID:     album.ID,
		InviteToken: utils.NewCapabilityToken(),
		GuestName:   guestName,
		GuestEmail:  guestEmail,
		MaxPhotos:   album.ClampInvitePhotos(maxPhotos),
		IsGeneral:   isGeneral,
		IsActive:    true,
	}
}

// Remaining is the invite's own capacity, floored at zero
func (i *AlbumInvite) Remaining() int {
	r := i.MaxPhotos - i.PhotosUploaded
	if r < 0 {
		return 0
	}
	return r
}

// ShareURL is a pure projection, never persisted
func (i *AlbumInvite) ShareURL(albumSlug string) string {
	return config.BASE_URL + "/album/" + albumSlug + "/upload?token=" + i.InviteToken
}
