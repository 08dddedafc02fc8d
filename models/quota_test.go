package models

import (
	"testing"

	"flipbook/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	db.Instance = gdb
	Init()
}

func createAlbum(t *testing.T, maxPerGuest int) *Album {
	album := NewAlbum("Test Wedding", "classic", "owner@example.com", maxPerGuest)
	require.NoError(t, db.Instance.Create(&album).Error)
	return &album
}

func createInvite(t *testing.T, album *Album, maxPhotos int) *AlbumInvite {
	invite := NewAlbumInvite(album, "Guest", "", maxPhotos, false)
	invite.MaxPhotos = maxPhotos // bypass clamping, tests set exact ceilings
	require.NoError(t, db.Instance.Create(&invite).Error)
	return &invite
}

func TestAcceptUpload_InviteCeiling(t *testing.T) {
	setupTestDB(t)
	album := createAlbum(t, 10) // below threshold: no album-wide cap
	invite := createInvite(t, album, 2)

	for i := 0; i < 2; i++ {
		photo := AlbumPhoto{URL: "https://cdn/p.jpg", UploadedByToken: &invite.InviteToken}
		require.NoError(t, AcceptUpload(db.Instance, album, invite, &photo))
		assert.Equal(t, i, photo.DisplayOrder)
	}
	stored := AlbumInvite{}
	require.NoError(t, db.Instance.First(&stored, invite.ID).Error)
	assert.Equal(t, 2, stored.PhotosUploaded)

	photo := AlbumPhoto{URL: "https://cdn/p.jpg", UploadedByToken: &invite.InviteToken}
	assert.ErrorIs(t, AcceptUpload(db.Instance, album, invite, &photo), ErrInviteFull)
	require.NoError(t, db.Instance.First(&stored, invite.ID).Error)
	assert.Equal(t, 2, stored.PhotosUploaded)
}

func TestAcceptUpload_AlbumCap(t *testing.T) {
	setupTestDB(t)
	album := createAlbum(t, 50)
	for i := 0; i < 49; i++ {
		require.NoError(t, db.Instance.Create(&AlbumPhoto{AlbumID: album.ID, URL: "https://cdn/p.jpg", DisplayOrder: i}).Error)
	}
	// Admin takes the last slot
	photo := AlbumPhoto{URL: "https://cdn/last.jpg"}
	require.NoError(t, AcceptUpload(db.Instance, album, nil, &photo))
	assert.Equal(t, 49, photo.DisplayOrder)

	photo = AlbumPhoto{URL: "https://cdn/overflow.jpg"}
	assert.ErrorIs(t, AcceptUpload(db.Instance, album, nil, &photo), ErrAlbumFull)
}

func TestAcceptUpload_InviteFullEvenWithAlbumSpace(t *testing.T) {
	setupTestDB(t)
	album := createAlbum(t, 50)
	for i := 0; i < 30; i++ {
		require.NoError(t, db.Instance.Create(&AlbumPhoto{AlbumID: album.ID, URL: "https://cdn/p.jpg", DisplayOrder: i}).Error)
	}
	invite := createInvite(t, album, 10)
	require.NoError(t, db.Instance.Model(invite).UpdateColumn("photos_uploaded", 10).Error)
	invite.PhotosUploaded = 10

	photo := AlbumPhoto{URL: "https://cdn/p.jpg", UploadedByToken: &invite.InviteToken}
	assert.ErrorIs(t, AcceptUpload(db.Instance, album, invite, &photo), ErrInviteFull)
}

func TestAcceptUpload_SmallAlbumValueIsNotACap(t *testing.T) {
	setupTestDB(t)
	album := createAlbum(t, 10) // below 50: only a default, never an album cap
	invite := createInvite(t, album, 1000)

	for i := 0; i < 15; i++ {
		photo := AlbumPhoto{URL: "https://cdn/p.jpg", UploadedByToken: &invite.InviteToken}
		require.NoError(t, AcceptUpload(db.Instance, album, invite, &photo))
	}
	stored := AlbumInvite{}
	require.NoError(t, db.Instance.First(&stored, invite.ID).Error)
	assert.Equal(t, 15, stored.PhotosUploaded)
}

func TestReleaseUploadSlot(t *testing.T) {
	setupTestDB(t)
	album := createAlbum(t, 10)
	invite := createInvite(t, album, 5)
	require.NoError(t, db.Instance.Model(invite).UpdateColumn("photos_uploaded", 2).Error)

	require.NoError(t, ReleaseUploadSlot(db.Instance, album.ID, invite.InviteToken))
	stored := AlbumInvite{}
	require.NoError(t, db.Instance.First(&stored, invite.ID).Error)
	assert.Equal(t, 1, stored.PhotosUploaded)

	// Floors at zero even when called more often than photos exist
	require.NoError(t, ReleaseUploadSlot(db.Instance, album.ID, invite.InviteToken))
	require.NoError(t, ReleaseUploadSlot(db.Instance, album.ID, invite.InviteToken))
	require.NoError(t, db.Instance.First(&stored, invite.ID).Error)
	assert.Equal(t, 0, stored.PhotosUploaded)
}

func TestEffectiveRemaining(t *testing.T) {
	invite := &AlbumInvite{MaxPhotos: 10, PhotosUploaded: 4}
	tests := []struct {
		name           string
		albumRemaining int
		invite         *AlbumInvite
		want           int
	}{
		{"admin bound by album", 7, nil, 7},
		{"admin unbounded", -1, nil, -1},
		{"invite is the tighter bound", 100, invite, 6},
		{"album is the tighter bound", 3, invite, 3},
		{"unbounded album, invite bound", -1, invite, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveRemaining(tt.albumRemaining, tt.invite))
		})
	}
}

func TestNextDisplayOrder_GapsTolerated(t *testing.T) {
	setupTestDB(t)
	album := createAlbum(t, 10)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Instance.Create(&AlbumPhoto{AlbumID: album.ID, URL: "https://cdn/p.jpg", DisplayOrder: i}).Error)
	}
	// Delete the middle photo: survivors keep their order values
	require.NoError(t, db.Instance.Delete(&AlbumPhoto{}, "album_id = ? and display_order = 1", album.ID).Error)

	next, err := NextDisplayOrder(db.Instance, album.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestReorderPhotos(t *testing.T) {
	setupTestDB(t)
	album := createAlbum(t, 10)
	other := createAlbum(t, 10)
	ids := make([]uint64, 3)
	for i := 0; i < 3; i++ {
		photo := AlbumPhoto{AlbumID: album.ID, URL: "https://cdn/p.jpg", DisplayOrder: i}
		require.NoError(t, db.Instance.Create(&photo).Error)
		ids[i] = photo.ID
	}
	foreign := AlbumPhoto{AlbumID: other.ID, URL: "https://cdn/x.jpg"}
	require.NoError(t, db.Instance.Create(&foreign).Error)

	// [p3, p1, p2] plus an id from another album, which must be ignored
	require.NoError(t, ReorderPhotos(db.Instance, album.ID, []uint64{ids[2], ids[0], ids[1], foreign.ID}))

	photos := []AlbumPhoto{}
	require.NoError(t, db.Instance.Where("album_id = ?", album.ID).Order("display_order ASC").Find(&photos).Error)
	require.Len(t, photos, 3)
	assert.Equal(t, ids[2], photos[0].ID)
	assert.Equal(t, ids[0], photos[1].ID)
	assert.Equal(t, ids[1], photos[2].ID)
	assert.Equal(t, []int{0, 1, 2}, []int{photos[0].DisplayOrder, photos[1].DisplayOrder, photos[2].DisplayOrder})

	untouched := AlbumPhoto{}
	require.NoError(t, db.Instance.First(&untouched, foreign.ID).Error)
	assert.Equal(t, other.ID, untouched.AlbumID)
}
