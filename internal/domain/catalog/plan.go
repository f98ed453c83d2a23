package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// UnlimitedReservations is the reservationsQuota sentinel for no limit.
const UnlimitedReservations = -1

var hundred = decimal.NewFromInt(100)

// PlanAttributes carries the mutable attributes of a plan. Prices are
// VAT-inclusive amounts in the catalog currency.
type PlanAttributes struct {
	Code                string
	Name                i18n.Text
	TargetCustomer      i18n.Text
	SupportType         i18n.Text
	YearlyPrice         decimal.Decimal
	DiscountPercentage  decimal.Decimal
	UnitsQuota          int
	AdditionalUnitPrice decimal.Decimal
	ReservationsQuota   int
	SortOrder           int
	IsActive            bool
}

func (a PlanAttributes) validate() error {
	if strings.TrimSpace(a.Code) == "" {
		return fmt.Errorf("%w: plan code is required", ErrInvalidCode)
	}
	if len(a.Code) > 50 {
		return fmt.Errorf("%w: plan code too long (max 50 characters)", ErrInvalidCode)
	}
	if strings.TrimSpace(a.Name.EN) == "" {
		return fmt.Errorf("%w: plan %s has no English name", ErrInvalidName, a.Code)
	}
	if a.YearlyPrice.IsNegative() {
		return fmt.Errorf("%w: plan %s yearly price is negative", ErrInvalidPrice, a.Code)
	}
	if a.AdditionalUnitPrice.IsNegative() {
		return fmt.Errorf("%w: plan %s additional unit price is negative", ErrInvalidPrice, a.Code)
	}
	if a.DiscountPercentage.IsNegative() || a.DiscountPercentage.GreaterThan(hundred) {
		return fmt.Errorf("%w: plan %s discount %s outside 0-100", ErrInvalidDiscount, a.Code, a.DiscountPercentage)
	}
	if a.UnitsQuota < 0 {
		return fmt.Errorf("%w: plan %s units quota is negative", ErrInvalidQuota, a.Code)
	}
	if a.ReservationsQuota < UnlimitedReservations {
		return fmt.Errorf("%w: plan %s reservations quota must be >= 0 or -1", ErrInvalidQuota, a.Code)
	}
	return nil
}

// Plan is a subscription tier.
type Plan struct {
	id        uint
	attrs     PlanAttributes
	createdAt time.Time
	updatedAt time.Time
}

func NewPlan(attrs PlanAttributes) (*Plan, error) {
	attrs.Code = strings.TrimSpace(attrs.Code)
	if err := attrs.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Plan{
		attrs:     attrs,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructPlan rebuilds a plan read from storage.
func ReconstructPlan(id uint, attrs PlanAttributes, createdAt, updatedAt time.Time) (*Plan, error) {
	if err := attrs.validate(); err != nil {
		return nil, err
	}
	return &Plan{
		id:        id,
		attrs:     attrs,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) Code() string                         { return p.attrs.Code }
func (p *Plan) Name() i18n.Text                      { return p.attrs.Name }
func (p *Plan) TargetCustomer() i18n.Text            { return p.attrs.TargetCustomer }
func (p *Plan) SupportType() i18n.Text               { return p.attrs.SupportType }
func (p *Plan) YearlyPrice() decimal.Decimal         { return p.attrs.YearlyPrice }
func (p *Plan) DiscountPercentage() decimal.Decimal  { return p.attrs.DiscountPercentage }
func (p *Plan) UnitsQuota() int                      { return p.attrs.UnitsQuota }
func (p *Plan) AdditionalUnitPrice() decimal.Decimal { return p.attrs.AdditionalUnitPrice }
func (p *Plan) ReservationsQuota() int               { return p.attrs.ReservationsQuota }
func (p *Plan) SortOrder() int                       { return p.attrs.SortOrder }
func (p *Plan) IsActive() bool                       { return p.attrs.IsActive }
func (p *Plan) CreatedAt() time.Time                 { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time                 { return p.updatedAt }

// Attributes returns a copy of the plan's attributes.
func (p *Plan) Attributes() PlanAttributes {
	return p.attrs
}

func (p *Plan) HasUnlimitedReservations() bool {
	return p.attrs.ReservationsQuota == UnlimitedReservations
}

func (p *Plan) HasDiscount() bool {
	return p.attrs.DiscountPercentage.IsPositive()
}

// DiscountedPrice is the yearly price after the plan's own discount.
func (p *Plan) DiscountedPrice() decimal.Decimal {
	return ApplyDiscount(p.attrs.YearlyPrice, p.attrs.DiscountPercentage)
}

// Update replaces the plan's attributes; the code is immutable.
func (p *Plan) Update(attrs PlanAttributes) error {
	attrs.Code = p.attrs.Code
	if err := attrs.validate(); err != nil {
		return err
	}
	p.attrs = attrs
	p.updatedAt = time.Now().UTC()
	return nil
}

// ApplyDiscount returns amount * (1 - percent/100).
func ApplyDiscount(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(hundred.Sub(percent)).Div(hundred)
}
