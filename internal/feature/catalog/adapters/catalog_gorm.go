// Package adapters provides the GORM implementation of the catalog repository.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"yoga_storefront/internal/feature/catalog/domain/entity"
	"yoga_storefront/internal/feature/catalog/usecase"
)

type catalogGorm struct {
	db *gorm.DB
}

// catalogGormがCatalogRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CatalogRepository = (*catalogGorm)(nil)

// NewCatalogRepository creates a catalog repository backed by gorm.
func NewCatalogRepository(db *gorm.DB) *catalogGorm {
	return &catalogGorm{db: db}
}

// ListClasses returns every class ordered by ID.
func (r *catalogGorm) ListClasses(ctx context.Context) ([]entity.YogaClass, error) {
	var rows []ClassModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.YogaClass, len(rows))
	for i := range rows {
		out[i] = rows[i].ToEntity()
	}
	return out, nil
}

// ListInstances returns the instances of classID ordered by ID.
// An unknown class yields an empty slice.
func (r *catalogGorm) ListInstances(ctx context.Context, classID int64) ([]entity.ClassInstance, error) {
	var rows []ClassInstanceModel
	if err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.ClassInstance, len(rows))
	for i := range rows {
		out[i] = rows[i].ToEntity()
	}
	return out, nil
}

// Seed upserts classes and their instances in one transaction.
// The storefront never writes the catalog; this is used by the seed command and tests.
func (r *catalogGorm) Seed(ctx context.Context, classes []entity.YogaClass) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range classes {
			if err := tx.Save(ClassModelFromEntity(c)).Error; err != nil {
				return err
			}
			for _, inst := range c.Instances {
				if err := tx.Save(ClassInstanceModelFromEntity(c.ID, inst)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
