package postgres

import (
	"context"

	"vendorradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Statements run after AutoMigrate. The geography columns are generated so every
// write through GORM keeps them in sync without triggers.
var postMigrateStatements = []string{
	`ALTER TABLE vendors ADD COLUMN IF NOT EXISTS location geography(Point, 4326)
	   GENERATED ALWAYS AS (
	     CASE WHEN longitude IS NOT NULL AND latitude IS NOT NULL
	       THEN ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
	     END
	   ) STORED`,
	`CREATE INDEX IF NOT EXISTS idx_vendors_location ON vendors USING GIST (location)`,
	`ALTER TABLE vendor_positions ADD COLUMN IF NOT EXISTS position geography(Point, 4326)
	   GENERATED ALWAYS AS (ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography) STORED`,
	`CREATE INDEX IF NOT EXISTS idx_vendor_positions_position ON vendor_positions USING GIST (position)`,
	`CREATE INDEX IF NOT EXISTS idx_products_tags ON products USING GIN (tags)`,
	`ALTER TABLE products DROP CONSTRAINT IF EXISTS chk_products_price`,
	`ALTER TABLE products ADD CONSTRAINT chk_products_price CHECK (price >= 0 AND quantity >= 0)`,
}

// Migrate prepares the schema: extensions, tables and the PostGIS columns and indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	for _, extension := range []string{"postgis", "pgcrypto"} {
		if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS " + extension).Error; err != nil {
			return errors.Wrapf(err, "failed to create extension %s", extension)
		}
	}

	if err := tx.AutoMigrate(model.AllModels()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	for _, statement := range postMigrateStatements {
		if err := tx.Exec(statement).Error; err != nil {
			return errors.Wrap(err, "failed to apply post-migration statement")
		}
	}

	return nil
}
