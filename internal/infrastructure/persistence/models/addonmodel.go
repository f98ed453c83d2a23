package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/shared/constants"
)

// AddonModel is the persistence model for optional add-ons.
type AddonModel struct {
	ID            uint            `gorm:"primarykey"`
	Code          string          `gorm:"uniqueIndex;not null;size:50"`
	NameEN        string          `gorm:"column:name_en;not null;size:100"`
	NameAR        string          `gorm:"column:name_ar;size:100"`
	DescriptionEN string          `gorm:"column:description_en;size:500"`
	DescriptionAR string          `gorm:"column:description_ar;size:500"`
	YearlyPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IsOnetime     bool            `gorm:"not null;default:false"`
	OnetimePrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SortOrder     int             `gorm:"not null;default:0;index"`
	IsActive      bool            `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AddonModel) TableName() string {
	return constants.TableAddons
}
