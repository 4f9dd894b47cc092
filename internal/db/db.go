package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"integraservicios/internal/config"
	"integraservicios/internal/model"
)

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Employee{},
		&model.ResourceType{},
		&model.Resource{},
		&model.Reservation{},
		&model.Loan{},
		&model.Return{},
	}
}

// GormConfig is shared by every connection. Translated dialect errors surface as
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated, which TranslateError maps.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}
}

// Open returns a connected GORM DB instance for the configured driver.
func Open(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	gormDB, err := gorm.Open(dialector, GormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return gormDB, nil
}

// Migrate creates or updates the schema, dropping every table first when reset is set.
func Migrate(gormDB *gorm.DB, reset bool, log *zap.Logger) error {
	models := Models()
	if reset {
		log.Warn("RESET_DB=true detected, dropping all tables")
		for i := len(models) - 1; i >= 0; i-- {
			if err := gormDB.Migrator().DropTable(models[i]); err != nil {
				log.Warn("drop table", zap.Error(err))
			}
		}
	}
	if err := gormDB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
