// Package catalogfile reads the plan and add-on catalog from a YAML file.
// The same file format seeds the database.
package catalogfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// Document is the on-disk catalog layout.
type Document struct {
	Plans  []PlanEntry  `yaml:"plans"`
	Addons []AddonEntry `yaml:"addons"`
}

// Amount is a decimal scalar kept as written, so prices may be given
// either as plain numbers or quoted strings.
type Amount string

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	*a = Amount(node.Value)
	return nil
}

type PlanEntry struct {
	Code                string    `yaml:"code"`
	Name                i18n.Text `yaml:"name"`
	TargetCustomer      i18n.Text `yaml:"target_customer"`
	SupportType         i18n.Text `yaml:"support_type"`
	YearlyPrice         Amount    `yaml:"yearly_price"`
	DiscountPercentage  Amount    `yaml:"discount_percentage"`
	UnitsQuota          int       `yaml:"units_quota"`
	AdditionalUnitPrice Amount    `yaml:"additional_unit_price"`
	ReservationsQuota   int       `yaml:"reservations_quota"`
	SortOrder           int       `yaml:"sort_order"`
	IsActive            *bool     `yaml:"is_active"`
}

type AddonEntry struct {
	Code         string    `yaml:"code"`
	Name         i18n.Text `yaml:"name"`
	Description  i18n.Text `yaml:"description"`
	YearlyPrice  Amount    `yaml:"yearly_price"`
	IsOnetime    bool      `yaml:"is_onetime"`
	OnetimePrice Amount    `yaml:"onetime_price"`
	SortOrder    int       `yaml:"sort_order"`
	IsActive     *bool     `yaml:"is_active"`
}

// Parse decodes a catalog document. Unknown keys are rejected so typos in
// hand-edited files surface early.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return &doc, nil
}

// ReadFile reads and parses the catalog file at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Entities validates every entry and builds the domain objects in file
// order. Inactive entries are kept; callers filter as needed.
func (d *Document) Entities() ([]*catalog.Plan, []*catalog.Addon, error) {
	plans := make([]*catalog.Plan, 0, len(d.Plans))
	for i, e := range d.Plans {
		p, err := e.toEntity()
		if err != nil {
			return nil, nil, fmt.Errorf("plans[%d]: %w", i, err)
		}
		plans = append(plans, p)
	}

	addons := make([]*catalog.Addon, 0, len(d.Addons))
	for i, e := range d.Addons {
		a, err := e.toEntity()
		if err != nil {
			return nil, nil, fmt.Errorf("addons[%d]: %w", i, err)
		}
		addons = append(addons, a)
	}

	return plans, addons, nil
}

func (e PlanEntry) toEntity() (*catalog.Plan, error) {
	yearly, err := parseAmount("yearly_price", e.YearlyPrice)
	if err != nil {
		return nil, err
	}
	discount, err := parseAmount("discount_percentage", e.DiscountPercentage)
	if err != nil {
		return nil, err
	}
	unitPrice, err := parseAmount("additional_unit_price", e.AdditionalUnitPrice)
	if err != nil {
		return nil, err
	}

	return catalog.NewPlan(catalog.PlanAttributes{
		Code:                e.Code,
		Name:                e.Name,
		TargetCustomer:      e.TargetCustomer,
		SupportType:         e.SupportType,
		YearlyPrice:         yearly,
		DiscountPercentage:  discount,
		UnitsQuota:          e.UnitsQuota,
		AdditionalUnitPrice: unitPrice,
		ReservationsQuota:   e.ReservationsQuota,
		SortOrder:           e.SortOrder,
		IsActive:            active(e.IsActive),
	})
}

func (e AddonEntry) toEntity() (*catalog.Addon, error) {
	yearly, err := parseAmount("yearly_price", e.YearlyPrice)
	if err != nil {
		return nil, err
	}
	onetime, err := parseAmount("onetime_price", e.OnetimePrice)
	if err != nil {
		return nil, err
	}

	return catalog.NewAddon(catalog.AddonAttributes{
		Code:         e.Code,
		Name:         e.Name,
		Description:  e.Description,
		YearlyPrice:  yearly,
		IsOnetime:    e.IsOnetime,
		OnetimePrice: onetime,
		SortOrder:    e.SortOrder,
		IsActive:     active(e.IsActive),
	})
}

func parseAmount(field string, a Amount) (decimal.Decimal, error) {
	s := string(a)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q", field, s)
	}
	return d, nil
}

// Entries default to active.
func active(b *bool) bool {
	return b == nil || *b
}
