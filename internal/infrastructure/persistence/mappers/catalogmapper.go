package mappers

import (
	"fmt"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/infrastructure/persistence/models"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
)

// PlanMapper handles the conversion between plan entities and persistence models
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*catalog.Plan, error)
	ToModel(entity *catalog.Plan) *models.PlanModel
	ToEntities(models []*models.PlanModel) ([]*catalog.Plan, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*catalog.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructPlan(model.ID, catalog.PlanAttributes{
		Code:                model.Code,
		Name:                i18n.T(model.NameEN, model.NameAR),
		TargetCustomer:      i18n.T(model.TargetCustomerEN, model.TargetCustomerAR),
		SupportType:         i18n.T(model.SupportTypeEN, model.SupportTypeAR),
		YearlyPrice:         model.YearlyPrice,
		DiscountPercentage:  model.DiscountPercentage,
		UnitsQuota:          model.UnitsQuota,
		AdditionalUnitPrice: model.AdditionalUnitPrice,
		ReservationsQuota:   model.ReservationsQuota,
		SortOrder:           model.SortOrder,
		IsActive:            model.IsActive,
	}, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan %s: %w", model.Code, err)
	}
	return entity, nil
}

func (m *planMapper) ToModel(entity *catalog.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}

	a := entity.Attributes()
	return &models.PlanModel{
		ID:                  entity.ID(),
		Code:                a.Code,
		NameEN:              a.Name.EN,
		NameAR:              a.Name.AR,
		TargetCustomerEN:    a.TargetCustomer.EN,
		TargetCustomerAR:    a.TargetCustomer.AR,
		SupportTypeEN:       a.SupportType.EN,
		SupportTypeAR:       a.SupportType.AR,
		YearlyPrice:         a.YearlyPrice,
		DiscountPercentage:  a.DiscountPercentage,
		UnitsQuota:          a.UnitsQuota,
		AdditionalUnitPrice: a.AdditionalUnitPrice,
		ReservationsQuota:   a.ReservationsQuota,
		SortOrder:           a.SortOrder,
		IsActive:            a.IsActive,
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*catalog.Plan, error) {
	entities := make([]*catalog.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// AddonMapper handles the conversion between add-on entities and persistence models
type AddonMapper interface {
	ToEntity(model *models.AddonModel) (*catalog.Addon, error)
	ToModel(entity *catalog.Addon) *models.AddonModel
	ToEntities(models []*models.AddonModel) ([]*catalog.Addon, error)
}

type addonMapper struct{}

func NewAddonMapper() AddonMapper {
	return &addonMapper{}
}

func (m *addonMapper) ToEntity(model *models.AddonModel) (*catalog.Addon, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructAddon(model.ID, catalog.AddonAttributes{
		Code:         model.Code,
		Name:         i18n.T(model.NameEN, model.NameAR),
		Description:  i18n.T(model.DescriptionEN, model.DescriptionAR),
		YearlyPrice:  model.YearlyPrice,
		IsOnetime:    model.IsOnetime,
		OnetimePrice: model.OnetimePrice,
		SortOrder:    model.SortOrder,
		IsActive:     model.IsActive,
	}, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct add-on %s: %w", model.Code, err)
	}
	return entity, nil
}

func (m *addonMapper) ToModel(entity *catalog.Addon) *models.AddonModel {
	if entity == nil {
		return nil
	}

	a := entity.Attributes()
	return &models.AddonModel{
		ID:            entity.ID(),
		Code:          a.Code,
		NameEN:        a.Name.EN,
		NameAR:        a.Name.AR,
		DescriptionEN: a.Description.EN,
		DescriptionAR: a.Description.AR,
		YearlyPrice:   a.YearlyPrice,
		IsOnetime:     a.IsOnetime,
		OnetimePrice:  a.OnetimePrice,
		SortOrder:     a.SortOrder,
		IsActive:      a.IsActive,
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *addonMapper) ToEntities(addonModels []*models.AddonModel) ([]*catalog.Addon, error) {
	entities := make([]*catalog.Addon, 0, len(addonModels))
	for _, model := range addonModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
