package access

import (
	"errors"

	"flipbook/db"
	"flipbook/models"
)

// Role is what a presented capability token resolves to for a given album.
// Possession of the right string is the whole authentication model - there
// are no user accounts or sessions.
type Role int

const (
	Unauthorized Role = iota
	Guest
	Admin
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	case Guest:
		return "guest"
	}
	return "unauthorized"
}

var (
	ErrNoToken       = errors.New("no token supplied")
	ErrAlbumNotFound = errors.New("album not found")
	ErrBadToken      = errors.New("token not recognised")
)

type Access struct {
	Role   Role
	Album  *models.Album
	Invite *models.AlbumInvite
}

// Resolve classifies the caller for an album. Checks short-circuit in
// precedence order: missing token, unknown slug, admin token (wins over any
// invite match), active invite token. Revoked invites no longer resolve.
func Resolve(albumSlug, presentedToken string) (Access, error) {
	if presentedToken == "" {
		return Access{Role: Unauthorized}, ErrNoToken
	}
	album := models.Album{}
	err := db.Instance.Where("slug = ?", albumSlug).First(&album).Error
	if err != nil {
		return Access{Role: Unauthorized}, ErrAlbumNotFound
	}
	if album.AdminToken == presentedToken {
		return Access{Role: Admin, Album: &album}, nil
	}
	invite := models.AlbumInvite{}
	err = db.Instance.
		Where("album_id = ? and invite_token = ? and is_active = ?", album.ID, presentedToken, true).
		First(&invite).Error
	if err == nil {
		return Access{Role: Guest, Album: &album, Invite: &invite}, nil
	}
	return Access{Role: Unauthorized}, ErrBadToken
}
