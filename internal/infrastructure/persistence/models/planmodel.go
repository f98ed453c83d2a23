package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/shared/constants"
)

// PlanModel is the persistence model for subscription plans. Prices are
// VAT-inclusive SAR amounts.
type PlanModel struct {
	ID                  uint            `gorm:"primarykey"`
	Code                string          `gorm:"uniqueIndex;not null;size:50"`
	NameEN              string          `gorm:"column:name_en;not null;size:100"`
	NameAR              string          `gorm:"column:name_ar;size:100"`
	TargetCustomerEN    string          `gorm:"column:target_customer_en;size:255"`
	TargetCustomerAR    string          `gorm:"column:target_customer_ar;size:255"`
	SupportTypeEN       string          `gorm:"column:support_type_en;size:100"`
	SupportTypeAR       string          `gorm:"column:support_type_ar;size:100"`
	YearlyPrice         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountPercentage  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	UnitsQuota          int             `gorm:"not null;default:0"`
	AdditionalUnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ReservationsQuota   int             `gorm:"not null;default:0"`
	SortOrder           int             `gorm:"not null;default:0;index"`
	IsActive            bool            `gorm:"not null;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
