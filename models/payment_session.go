package models

const (
	SessionPending   = "pending"
	SessionCompleted = "completed"
)

// PaymentSession keys album creation on the checkout session id so duplicate
// webhook deliveries can never create a second album.
type PaymentSession struct {
	ID                uint64 `gorm:"primaryKey"`
	CreatedAt         int64
	OrderID           string `gorm:"type:varchar(100);index:uniq_order,unique"`
	PlanID            string `gorm:"type:varchar(50);not null"`
	Amount            int64  `gorm:"not null"` // minor units
	Currency          string `gorm:"type:varchar(10);not null"`
	Title             string `gorm:"type:varchar(300)"`
	Template          string `gorm:"type:varchar(50)"`
	OwnerEmail        string `gorm:"type:varchar(200)"`
	MaxPhotosPerGuest int    `gorm:"not null"`
	Status            string `gorm:"type:varchar(20);not null"`
	AlbumID           *uint64
}
