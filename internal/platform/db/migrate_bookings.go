package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"yoga_storefront/internal/feature/booking/domain/entity"
)

// バージョン1の予約は class_instance_id だけを持つため、インスタンスから class_id と
// 講師・日付を補完する。
const backfillFromInstanceSQL = `
UPDATE bookings SET
	class_id = (SELECT ci.class_id FROM class_instances ci WHERE ci.id = bookings.class_instance_id),
	teacher  = COALESCE(NULLIF(teacher, ''), (SELECT ci.teacher FROM class_instances ci WHERE ci.id = bookings.class_instance_id), ''),
	"date"   = COALESCE(NULLIF("date", ''), (SELECT ci."date" FROM class_instances ci WHERE ci.id = bookings.class_instance_id), '')
WHERE class_id IS NULL
	AND class_instance_id IS NOT NULL
	AND EXISTS (SELECT 1 FROM class_instances ci WHERE ci.id = bookings.class_instance_id)`

// MigrateBookings upgrades version 1 booking rows to the canonical shape and
// returns how many rows were stamped with the current schema version.
// Rows whose instance no longer exists keep a NULL class_id and their old version.
// It is safe to run repeatedly.
func MigrateBookings(ctx context.Context, db *gorm.DB) (int64, error) {
	var stamped int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(backfillFromInstanceSQL).Error; err != nil {
			return fmt.Errorf("backfill class_id: %w", err)
		}
		res := tx.Exec(
			"UPDATE bookings SET schema_version = ? WHERE class_id IS NOT NULL AND schema_version < ?",
			entity.SchemaVersion, entity.SchemaVersion,
		)
		if res.Error != nil {
			return fmt.Errorf("stamp schema version: %w", res.Error)
		}
		stamped = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return stamped, nil
}
