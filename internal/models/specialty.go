package models

import "gorm.io/datatypes"

// Specialty is an admin-managed taxonomy entry. Name and Slug each carry
// their own unique constraint; the constraint, not the service pre-check,
// is what decides concurrent create races.
type Specialty struct {
	BaseModel
	Name          string         `gorm:"uniqueIndex;not null" json:"name"`
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description   *string        `json:"description"`
	Icon          *string        `json:"icon"`
	Color         string         `gorm:"default:'#2b5d62'" json:"color"`
	Subcategories datatypes.JSON `gorm:"type:jsonb" json:"subcategories,omitempty"`
	SortOrder     int            `gorm:"default:0" json:"sortOrder"`
	IsActive      bool           `gorm:"default:true" json:"isActive"`
}
