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

type AddonRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AddonMapper
	logger logger.Interface
}

func NewAddonRepository(db *gorm.DB, logger logger.Interface) catalog.AddonRepository {
	return &AddonRepositoryImpl{
		db:     db,
		mapper: mappers.NewAddonMapper(),
		logger: logger,
	}
}

func (r *AddonRepositoryImpl) ListActive(ctx context.Context) ([]*catalog.Addon, error) {
	var addonModels []*models.AddonModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.Active(), db.CatalogOrder()).
		Find(&addonModels).Error; err != nil {
		r.logger.Errorw("failed to list active add-ons", "error", err)
		return nil, fmt.Errorf("failed to list active add-ons: %w", err)
	}

	return r.mapper.ToEntities(addonModels)
}

func (r *AddonRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Addon, error) {
	var model models.AddonModel
	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.ByCode(code)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get add-on by code", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get add-on by code: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AddonRepositoryImpl) Save(ctx context.Context, addon *catalog.Addon) error {
	model := r.mapper.ToModel(addon)

	err := db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var existing models.AddonModel
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
		r.logger.Errorw("failed to save add-on", "error", err, "code", model.Code)
		return fmt.Errorf("failed to save add-on: %w", err)
	}

	if addon.ID() == 0 {
		if err := addon.SetID(model.ID); err != nil {
			return err
		}
	}

	r.logger.Debugw("add-on saved", "addon_id", model.ID, "code", model.Code)
	return nil
}
