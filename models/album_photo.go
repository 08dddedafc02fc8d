package models

import (
	"gorm.io/gorm"
)

type AlbumPhoto struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	AlbumID   uint64 `gorm:"not null;index:album_order,priority:1"`
	Album     Album  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	URL       string `gorm:"type:varchar(500);not null"`
	// Asset id at the media provider, kept so assets can be cleaned up later
	AssetID string `gorm:"type:varchar(200)"`
	// nil means the album admin uploaded the photo
	UploadedByToken *string `gorm:"type:varchar(100);index"`
	UploaderName    string  `gorm:"type:varchar(200)"`
	DisplayOrder    int     `gorm:"not null;index:album_order,priority:2"`
}

// NextDisplayOrder returns max(display_order)+1 for the album, 0 when empty.
// Deletions leave gaps; only an explicit reorder compacts the sequence.
func NextDisplayOrder(tx *gorm.DB, albumID uint64) (int, error) {
	var next int
	err := tx.Model(&AlbumPhoto{}).
		Select("coalesce(max(display_order)+1, 0)").
		Where("album_id = ?", albumID).
		Scan(&next).Error
	return next, err
}

// ReorderPhotos overwrites display_order with the index of each id in the
// submitted full ordering. Ids not belonging to the album are ignored.
func ReorderPhotos(db *gorm.DB, albumID uint64, orderedIDs []uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for index, id := range orderedIDs {
			err := tx.Model(&AlbumPhoto{}).
				Where("id = ? and album_id = ?", id, albumID).
				UpdateColumn("display_order", index).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// AlbumPhotoCount counts the photos currently in the album
func AlbumPhotoCount(tx *gorm.DB, albumID uint64) (int64, error) {
	var count int64
	err := tx.Model(&AlbumPhoto{}).Where("album_id = ?", albumID).Count(&count).Error
	return count, err
}
