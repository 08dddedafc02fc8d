package models

import (
	"flipbook/db"
)

func Init() {
	db.Instance.AutoMigrate(&Album{})
	db.Instance.AutoMigrate(&AlbumPhoto{})
	db.Instance.AutoMigrate(&AlbumInvite{})
	db.Instance.AutoMigrate(&PaymentSession{})
}
