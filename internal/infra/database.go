package infra

import (
	"fmt"

	"github.com/Projeto-SmartPark/smartpark-backend-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express (exclusion constraints, partial indexes).
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
		return nil, err
	}

	return db, nil
}

// RunMigrations creates the schema and applies the SQL-only patches.
// Safe to call repeatedly; also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Gestor{},
		&model.Estacionamento{},
		&model.Endereco{},
		&model.Telefone{},
		&model.Vaga{},
		&model.Tarifa{},
		&model.Veiculo{},
		&model.Reserva{},
		&model.RegistroAcesso{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that GORM AutoMigrate cannot express.
// The exclusion constraint is the backstop for reservation races: the service
// layer checks availability before inserting, but two concurrent requests can
// both pass the check — the constraint makes the second insert fail.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'reservas_sem_sobreposicao') THEN
		    ALTER TABLE reservas ADD CONSTRAINT reservas_sem_sobreposicao
		      EXCLUDE USING gist (
		        vaga_id WITH =,
		        data WITH =,
		        tsrange(data + hora_inicio::time, data + hora_fim::time) WITH &&
		      )
		      WHERE (status = 'ATIVA');
		  END IF;
		END $$`,
		// partial index for the open-access-records listing
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_registros_abertos') THEN
		    CREATE INDEX idx_registros_abertos
		        ON registro_acessos (vaga_id)
		        WHERE saida IS NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
