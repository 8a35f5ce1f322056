package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings goal. CurrentAmount may exceed TargetAmount;
// progress past 100% is rendered as-is.
type Goal struct {
	Base
	UserID        string          `gorm:"type:uuid;not null" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric;not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric;not null" json:"current_amount"`
	Deadline      time.Time       `json:"deadline"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
}

// Progress returns the completion percentage rounded to two decimals,
// or 0 when the target amount is zero.
func (g *Goal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}

// GoalPatch describes a partial-field update to a goal.
type GoalPatch struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	Icon          *string
	Color         *string
}

// Apply merges the set fields of the patch into the goal.
func (p GoalPatch) Apply(g *Goal) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Icon != nil {
		g.Icon = *p.Icon
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
	g.UpdatedAt = time.Now()
}
