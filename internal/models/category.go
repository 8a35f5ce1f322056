package models

import "time"

// Category represents a transaction category
type Category struct {
	Base
	UserID   string          `gorm:"type:uuid;not null" json:"user_id"`
	Name     string          `gorm:"not null" json:"name"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Icon     string          `json:"icon"`
	Color    string          `json:"color"`
	IsActive bool            `gorm:"default:true" json:"is_active"`
}

// CategoryPatch describes a partial-field update to a category.
type CategoryPatch struct {
	Name     *string
	Type     *TransactionType
	Icon     *string
	Color    *string
	IsActive *bool
}

// Apply merges the set fields of the patch into the category.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	c.UpdatedAt = time.Now()
}
