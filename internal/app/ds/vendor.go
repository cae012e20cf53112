package ds

import "time"

// Vendor is a supplier contact. Referenced by RFPs and Proposals;
// deleting a vendor never cascades into either.
type Vendor struct {
	ID         uint     `gorm:"primaryKey"`
	Name       string   `gorm:"type:varchar(100);not null"`
	Email      string   `gorm:"type:varchar(100);not null;index"` // stored trimmed and lower-cased
	Phone      string   `gorm:"type:varchar(30)"`
	Company    string   `gorm:"type:varchar(100);not null"`
	Categories []string `gorm:"serializer:json"`
	Notes      string   `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
