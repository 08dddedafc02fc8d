package models

import (
	"strings"
	"testing"
)

func TestAlbum_CapActive(t *testing.T) {
	tests := []struct {
		name        string
		maxPerGuest int
		wantActive  bool
	}{
		{"legacy default", 10, false},
		{"just below threshold", 49, false},
		{"threshold", 50, true},
		{"large real cap", 9999, true},
		{"unlimited sentinel", 10000, false},
		{"above sentinel", 20000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Album{MaxPhotosPerGuest: tt.maxPerGuest}
			if got := a.CapActive(); got != tt.wantActive {
				t.Errorf("CapActive() with %d = %v, want %v", tt.maxPerGuest, got, tt.wantActive)
			}
		})
	}
}

func TestAlbum_ClampInvitePhotos(t *testing.T) {
	tests := []struct {
		name        string
		maxPerGuest int
		requested   int
		want        int
	}{
		{"default when unset, cap active", 100, 0, DefaultInvitePhotos},
		{"clamped to album cap", 100, 500, 100},
		{"within cap untouched", 100, 50, 50},
		{"cap inactive, any value allowed", 10, 1000, 1000},
		{"cap inactive, small value is the default", 10, 0, 10},
		{"unlimited album, any value allowed", UnlimitedPhotos, 500, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Album{MaxPhotosPerGuest: tt.maxPerGuest}
			if got := a.ClampInvitePhotos(tt.requested); got != tt.want {
				t.Errorf("ClampInvitePhotos(%d) = %d, want %d", tt.requested, got, tt.want)
			}
		})
	}
}

func TestNewAlbum(t *testing.T) {
	a := NewAlbum("Anna & Ben", "classic", "anna@example.com", 100)
	if !strings.HasPrefix(a.Slug, "anna-ben-") {
		t.Errorf("unexpected slug %q", a.Slug)
	}
	if a.AdminToken == "" || len(a.AdminToken) < 30 {
		t.Errorf("weak admin token %q", a.AdminToken)
	}
	if !a.GuestUploadsEnabled {
		t.Error("guest uploads should default to enabled")
	}
	b := NewAlbum("Anna & Ben", "classic", "anna@example.com", 100)
	if a.Slug == b.Slug {
		t.Errorf("slugs must be unique, got %q twice", a.Slug)
	}
	if a.AdminToken == b.AdminToken {
		t.Error("admin tokens must be unique")
	}
}

func TestNewAlbumInvite(t *testing.T) {
	album := &Album{ID: 1, MaxPhotosPerGuest: 100}
	invite := NewAlbumInvite(album, "", "", 500, true)
	if invite.GuestName != GeneralInviteName {
		t.Errorf("general invite name = %q, want %q", invite.GuestName, GeneralInviteName)
	}
	if invite.MaxPhotos != 100 {
		t.Errorf("MaxPhotos = %d, want clamped 100", invite.MaxPhotos)
	}
	if !invite.IsActive {
		t.Error("new invites must be active")
	}
	named := NewAlbumInvite(album, "Uncle Bob", "bob@example.com", 5, false)
	if named.GuestName != "Uncle Bob" || named.MaxPhotos != 5 {
		t.Errorf("unexpected invite %+v", named)
	}
	if invite.InviteToken == named.InviteToken {
		t.Error("invite tokens must be unique")
	}
}
