package storage

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRow is the single-row table holding the serialized store
// document. Persistence is write-whole-state, so the relational layer is
// just a durable slot with an update timestamp.
type snapshotRow struct {
	ID        uint      `gorm:"primaryKey"`
	Document  []byte    `gorm:"type:blob"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "store_snapshots" }

// SQLiteBackend stores snapshots in a SQLite database via GORM. Useful when
// the deployment already ships a database volume instead of a flat file.
type SQLiteBackend struct {
	db *gorm.DB
}

// NewSQLiteBackend opens (or creates) the database and migrates the
// snapshot table.
func NewSQLiteBackend(dataSourceName string) (*SQLiteBackend, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}
	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Load() ([]byte, error) {
	var row snapshotRow
	err := b.db.First(&row, 1).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Document, nil
}

func (b *SQLiteBackend) Save(snapshot []byte) error {
	row := snapshotRow{ID: 1, Document: snapshot, UpdatedAt: time.Now()}
	return b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
}
