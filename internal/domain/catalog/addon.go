package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// AddonAttributes carries the mutable attributes of an add-on.
type AddonAttributes struct {
	Code         string
	Name         i18n.Text
	Description  i18n.Text
	YearlyPrice  decimal.Decimal
	IsOnetime    bool
	OnetimePrice decimal.Decimal
	SortOrder    int
	IsActive     bool
}

func (a AddonAttributes) validate() error {
	if strings.TrimSpace(a.Code) == "" {
		return fmt.Errorf("%w: add-on code is required", ErrInvalidCode)
	}
	if len(a.Code) > 50 {
		return fmt.Errorf("%w: add-on code too long (max 50 characters)", ErrInvalidCode)
	}
	if strings.TrimSpace(a.Name.EN) == "" {
		return fmt.Errorf("%w: add-on %s has no English name", ErrInvalidName, a.Code)
	}
	if a.YearlyPrice.IsNegative() || a.OnetimePrice.IsNegative() {
		return fmt.Errorf("%w: add-on %s has a negative price", ErrInvalidPrice, a.Code)
	}
	return nil
}

// Addon is an optional purchasable feature, recurring or one-time.
type Addon struct {
	id        uint
	attrs     AddonAttributes
	createdAt time.Time
	updatedAt time.Time
}

func NewAddon(attrs AddonAttributes) (*Addon, error) {
	attrs.Code = strings.TrimSpace(attrs.Code)
	if err := attrs.validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Addon{
		attrs:     attrs,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAddon rebuilds an add-on read from storage.
func ReconstructAddon(id uint, attrs AddonAttributes, createdAt, updatedAt time.Time) (*Addon, error) {
	if err := attrs.validate(); err != nil {
		return nil, err
	}
	return &Addon{
		id:        id,
		attrs:     attrs,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Addon) ID() uint {
	return a.id
}

func (a *Addon) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("add-on ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("add-on ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Addon) Code() string                  { return a.attrs.Code }
func (a *Addon) Name() i18n.Text               { return a.attrs.Name }
func (a *Addon) Description() i18n.Text        { return a.attrs.Description }
func (a *Addon) YearlyPrice() decimal.Decimal  { return a.attrs.YearlyPrice }
func (a *Addon) IsOnetime() bool               { return a.attrs.IsOnetime }
func (a *Addon) OnetimePrice() decimal.Decimal { return a.attrs.OnetimePrice }
func (a *Addon) SortOrder() int                { return a.attrs.SortOrder }
func (a *Addon) IsActive() bool                { return a.attrs.IsActive }
func (a *Addon) CreatedAt() time.Time          { return a.createdAt }
func (a *Addon) UpdatedAt() time.Time          { return a.updatedAt }

func (a *Addon) Attributes() AddonAttributes {
	return a.attrs
}

// ListPrice is onetimePrice for one-time add-ons and yearlyPrice otherwise.
func (a *Addon) ListPrice() decimal.Decimal {
	if a.attrs.IsOnetime {
		return a.attrs.OnetimePrice
	}
	return a.attrs.YearlyPrice
}

// Update replaces the add-on's attributes; the code is immutable.
func (a *Addon) Update(attrs AddonAttributes) error {
	attrs.Code = a.attrs.Code
	if err := attrs.validate(); err != nil {
		return err
	}
	a.attrs = attrs
	a.updatedAt = time.Now().UTC()
	return nil
}
