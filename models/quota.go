package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAlbumFull  = errors.New("album photo limit reached")
	ErrInviteFull = errors.New("invite photo limit reached")
)

// AlbumRemaining returns how many photos the album-wide cap still accepts,
// or -1 when the cap is not enforced for this album.
func AlbumRemaining(tx *gorm.DB, album *Album) (int, error) {
	if !album.CapActive() {
		return -1, nil
	}
	count, err := AlbumPhotoCount(tx, album.ID)
	if err != nil {
		return 0, err
	}
	remaining := album.MaxPhotosPerGuest - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// EffectiveRemaining is min(album remaining, invite remaining). A nil invite
// means the admin is uploading and only the album-wide cap applies. -1 means
// unbounded.
func EffectiveRemaining(albumRemaining int, invite *AlbumInvite) int {
	if invite == nil {
		return albumRemaining
	}
	if albumRemaining < 0 || invite.Remaining() < albumRemaining {
		return invite.Remaining()
	}
	return albumRemaining
}

// AcceptUpload claims one unit of upload capacity and appends the photo, as a
// single transaction. The album row is locked so two concurrent uploads can
// never both pass an album-wide check with one slot left, and the invite
// counter is bumped with a conditional update rather than read-then-write.
func AcceptUpload(db *gorm.DB, album *Album, invite *AlbumInvite, photo *AlbumPhoto) error {
	return db.Transaction(func(tx *gorm.DB) error {
		locked := Album{}
		q := tx
		// SQLite has a single writer and no FOR UPDATE syntax
		if tx.Dialector.Name() == "mysql" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&locked, album.ID).Error; err != nil {
			return err
		}
		remaining, err := AlbumRemaining(tx, &locked)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return ErrAlbumFull
		}
		if invite != nil {
			result := tx.Model(&AlbumInvite{}).
				Where("id = ? and photos_uploaded < max_photos", invite.ID).
				UpdateColumn("photos_uploaded", gorm.Expr("photos_uploaded + 1"))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInviteFull
			}
			invite.PhotosUploaded++
		}
		photo.AlbumID = album.ID
		photo.DisplayOrder, err = NextDisplayOrder(tx, album.ID)
		if err != nil {
			return err
		}
		return tx.Create(photo).Error
	})
}

// ReleaseUploadSlot gives back one unit after a guest-uploaded photo is
// deleted. Floored at zero so drifted counters never go negative.
func ReleaseUploadSlot(tx *gorm.DB, albumID uint64, inviteToken string) error {
	return tx.Model(&AlbumInvite{}).
		Where("album_id = ? and invite_token = ? and photos_uploaded > 0", albumID, inviteToken).
		UpdateColumn("photos_uploaded", gorm.Expr("photos_uploaded - 1")).Error
}
