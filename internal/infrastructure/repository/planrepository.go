package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jaras-platform/jaras/internal/domain/catalog"
	"github.com/jaras-platform/jaras/internal/infrastructure/persistence/mappers"
	"github.com/jaras-platform/jaras/internal/infrastructure/persistence/models"
	"github.com/jaras-platform/jaras/internal/shared/db"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) catalog.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) ListActive(ctx context.Context) ([]*catalog.Plan, error) {
	var planModels []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active(), db.CatalogOrder()).
		Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list active plans", "error", err)
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.ByCode(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by code", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get plan by code: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) Save(ctx context.Context, plan *catalog.Plan) error {
	model := r.mapper.ToModel(plan)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var existing models.PlanModel
		err := tx.Scopes(db.ByCode(model.Code)).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			model.ID = 0
			return tx.Create(model).Error
		case err != nil:
			return err
		default:
			model.ID = existing.ID
			model.CreatedAt = existing.CreatedAt
			model.UpdatedAt = time.Now().UTC()
			return tx.Save(model).Error
		}
	})
	if err != nil {
		r.logger.Errorw("failed to save plan", "error", err, "code", model.Code)
		return fmt.Errorf("failed to save plan: %w", err)
	}

	if plan.ID() == 0 {
		if err := plan.SetID(model.ID); err != nil {
			return err
		}
	}

	r.logger.Debugw("plan saved", "plan_id", model.ID, "code", model.Code)
	return nil
}
