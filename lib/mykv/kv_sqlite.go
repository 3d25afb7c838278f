package mykv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// entry is the single table of the device-local store
type entry struct {
	Key       string `gorm:"primaryKey;column:entry_key"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "kv_entries"
}

type sqliteStore struct {
	db *gorm.DB
}

func newSQLiteStore(path string) (KeyValueStore, func(), error) {
	if path == "" {
		return nil, func() {}, errors.New("sqlite path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormlogger.New(log.New(io.Discard, "", log.LstdFlags), gormlogger.Config{LogLevel: gormlogger.Silent}),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, func() {}, fmt.Errorf("error opening sqlite store %s: %w", path, err)
	}

	store, err := newSQLiteStoreFromDB(db)
	if err != nil {
		return nil, func() {}, err
	}

	return store, func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}, nil
}

func newSQLiteStoreFromDB(db *gorm.DB) (*sqliteStore, error) {
	err := db.AutoMigrate(&entry{})
	if err != nil {
		return nil, fmt.Errorf("error migrating key-value table: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(c context.Context, key string) (string, bool, error) {
	e := entry{}
	err := s.db.WithContext(c).Where("entry_key = ?", key).Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading key %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (s *sqliteStore) Set(c context.Context, key string, value string) error {
	err := s.db.WithContext(c).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry{Key: key, Value: value, UpdatedAt: time.Now()}).Error
	if err != nil {
		return fmt.Errorf("error writing key %s: %w", key, err)
	}
	return nil
}
