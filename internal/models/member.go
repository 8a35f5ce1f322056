package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FamilyMember represents a member of the household
type FamilyMember struct {
	Base
	UserID        string          `gorm:"type:uuid;not null" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	Role          string          `json:"role"`
	AvatarURL     string          `json:"avatar_url"`
	MonthlyIncome decimal.Decimal `gorm:"type:numeric;not null" json:"monthly_income"`
	Color         string          `json:"color"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
}

// MemberPatch describes a partial-field update to a family member.
type MemberPatch struct {
	Name          *string
	Role          *string
	AvatarURL     *string
	MonthlyIncome *decimal.Decimal
	Color         *string
	IsActive      *bool
}

// Apply merges the set fields of the patch into the member.
func (p MemberPatch) Apply(m *FamilyMember) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.AvatarURL != nil {
		m.AvatarURL = *p.AvatarURL
	}
	if p.MonthlyIncome != nil {
		m.MonthlyIncome = *p.MonthlyIncome
	}
	if p.Color != nil {
		m.Color = *p.Color
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
	m.UpdatedAt = time.Now()
}
