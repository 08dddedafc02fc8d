package models

import (
	"flipbook/config"
	"flipbook/utils"
)

const (
	// The album-wide photo cap is only enforced for values in
	// [AlbumCapMinimum, UnlimitedPhotos); smaller stored values are legacy
	// defaults and only seed new invites, larger ones mean "no cap".
	AlbumCapMinimum = 50
	UnlimitedPhotos = 10000

	DefaultInvitePhotos = 10
)

var AlbumTemplates = []string{"classic", "modern", "rustic", "elegant"}

type Album struct {
	ID                  uint64 `gorm:"primaryKey"`
	CreatedAt           int64
	Slug                string `gorm:"type:varchar(150);index:uniq_slug,unique"`
	OwnerEmail          string `gorm:"type:varchar(200);not null"`
	Title               string `gorm:"type:varchar(300)"`
	Template            string `gorm:"type:varchar(50);not null"`
	WeddingDate         *string
	MusicURL            string
	AdminToken          string `gorm:"type:varchar(100);index:uniq_admin_token,unique"`
	GuestUploadsEnabled bool   `gorm:"not null;default:true"`
	MaxPhotosPerGuest   int    `gorm:"not null;default:10"`
	Photos              []AlbumPhoto
	Invites             []AlbumInvite
}

// NewAlbum mints the slug and the admin capability token. The admin token is
// generated exactly once here and never rotated.
func NewAlbum(title, template, ownerEmail string, maxPhotosPerGuest int) Album {
	if maxPhotosPerGuest <= 0 {
		maxPhotosPerGuest = DefaultInvitePhotos
	}
	slug := utils.Slugify(title)
	if slug == "" {
		slug = "album"
	}
	return Album{
		Slug:                slug + "-" + utils.Rand8BytesToBase62(),
		OwnerEmail:          ownerEmail,
		Title:               title,
		Template:            template,
		AdminToken:          utils.NewCapabilityToken(),
		GuestUploadsEnabled: true,
		MaxPhotosPerGuest:   maxPhotosPerGuest,
	}
}

func ValidTemplate(template string) bool {
	for _, t := range AlbumTemplates {
		if t == template {
			return true
		}
	}
	return false
}

// CapActive reports whether MaxPhotosPerGuest doubles as an album-wide cap
func (a *Album) CapActive() bool {
	return a.MaxPhotosPerGuest >= AlbumCapMinimum && a.MaxPhotosPerGuest < UnlimitedPhotos
}

// InviteDefaultPhotos is the per-invite ceiling used when none is supplied
func (a *Album) InviteDefaultPhotos() int {
	if a.MaxPhotosPerGuest > 0 && a.MaxPhotosPerGuest < AlbumCapMinimum {
		return a.MaxPhotosPerGuest
	}
	return DefaultInvitePhotos
}

// ClampInvitePhotos bounds a requested per-invite ceiling to [1, album cap]
func (a *Album) ClampInvitePhotos(maxPhotos int) int {
	if maxPhotos <= 0 {
		maxPhotos = a.InviteDefaultPhotos()
	}
	if a.CapActive() && maxPhotos > a.MaxPhotosPerGuest {
		maxPhotos = a.MaxPhotosPerGuest
	}
	return maxPhotos
}

func (a *Album) ViewURL() string {
	return config.BASE_URL + "/flipbook/" + a.Slug
}

func (a *Album) AdminURL() string {
	return config.BASE_URL + "/album/" + a.Slug + "/admin?token=" + a.AdminToken
}
