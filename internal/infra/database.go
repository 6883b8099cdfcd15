package infra

import (
	"fmt"

	"github.com/LuisFernandoFloresSanchez/divertilandia-management-system/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate plus the data bootstrap (fixed expense categories).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	if err := Bootstrap(db); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return db, nil
}

// RunMigrations creates / updates all tables.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.ToyType{},
		&model.ToyClause{},
		&model.Game{},
		&model.Package{},
		&model.PackageGame{},
		&model.Event{},
		&model.Vehicle{},
		&model.FuelPrice{},
		&model.EventVehicleUsage{},
		&model.ExpenseCategory{},
		&model.Expense{},
	)
}

// Bootstrap seeds rows the runtime depends on. Idempotent: safe to run on
// every startup. The "Gasolina" category must exist before the first
// vehicle usage is recorded so companion expenses never race on creating it.
func Bootstrap(db *gorm.DB) error {
	return EnsureFuelCategory(db)
}

// EnsureFuelCategory upserts the fixed fuel expense category by name.
func EnsureFuelCategory(db *gorm.DB) error {
	desc := "Combustible para vehículos"
	color := "#F44336"
	cat := model.ExpenseCategory{
		Name:        model.FuelCategoryName,
		Description: &desc,
		Color:       &color,
		IsActive:    true,
	}
	return db.Where(model.ExpenseCategory{Name: model.FuelCategoryName}).
		FirstOrCreate(&cat).Error
}
