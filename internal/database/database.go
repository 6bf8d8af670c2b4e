package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stocksync/internal/models"
)

type Database struct {
	DB *gorm.DB
}

func New(databaseURL string) (*Database, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		// SQLite for development
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		// PostgreSQL for production, connected through database/sql + lib/pq
		var sqlDB *sql.DB
		sqlDB, err = sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS sync_runs (
		id UUID PRIMARY KEY,
		platform TEXT NOT NULL,
		campaign TEXT,
		status TEXT DEFAULT 'SUCCEEDED',
		offers_total INTEGER DEFAULT 0,
		stocks_pushed INTEGER DEFAULT 0,
		prices_pushed INTEGER DEFAULT 0,
		error TEXT,
		started_at TIMESTAMPTZ,
		finished_at TIMESTAMPTZ
	);
	`

	if strings.HasPrefix(databaseURL, "sqlite://") {
		createTablesSQL = strings.ReplaceAll(createTablesSQL, "UUID", "TEXT")
		createTablesSQL = strings.ReplaceAll(createTablesSQL, "TIMESTAMPTZ", "DATETIME")
	}

	if err := db.Exec(createTablesSQL).Error; err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Database{DB: db}, nil
}

// CreateRun persists one sync run record.
func (d *Database) CreateRun(run *models.SyncRun) error {
	if err := d.DB.Create(run).Error; err != nil {
		return fmt.Errorf("failed to save sync run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (d *Database) ListRuns(limit, offset int) ([]models.SyncRun, int64, error) {
	var runs []models.SyncRun
	var total int64

	query := d.DB.Model(&models.SyncRun{})
	query.Count(&total)

	err := query.Order("started_at DESC").Limit(limit).Offset(offset).Find(&runs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, total, nil
}

// GetRun fetches one run by ID.
func (d *Database) GetRun(id string) (*models.SyncRun, error) {
	var run models.SyncRun
	if err := d.DB.First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
