package clothes

import (
	"time"

	"gorm.io/datatypes"
)

// Clothing is a single wardrobe record. Attributes holds optional
// free-form metadata (brand, material, care instructions) as JSON.
type Clothing struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"size:64;not null" json:"name"`
	Color      string         `gorm:"size:32" json:"color"`
	Size       string         `gorm:"size:16" json:"size"`
	Attributes datatypes.JSON `gorm:"type:json" json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
