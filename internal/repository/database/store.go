// Package database implements the persistence adapter on a relational
// store through gorm. It supports sqlite for single-file deployments and
// mysql for shared ones; the schema is migrated and seeded on startup.
package database

import (
	"fmt"

	"github.com/Saurabh6266/Python-Learning-Platform/internal/config"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/model"
	"github.com/Saurabh6266/Python-Learning-Platform/internal/repository/seed"
	"github.com/Saurabh6266/Python-Learning-Platform/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store is the relational backend. All methods are safe for concurrent use;
// the database serialises writers.
type Store struct {
	DB *gorm.DB
}

// New opens the configured database, migrates the schema and seeds the
// catalog tables when they are empty.
func New(cfg *config.DatabaseConfig) (*Store, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&userRecord{},
		&resourceRecord{},
		&projectRecord{},
		&completionRecord{},
		&topicRecord{},
		&replyRecord{},
		&streakRecord{},
		&problemRecord{},
		&problemCompletionRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	s := &Store{DB: db}
	if err := s.seedCatalogs(); err != nil {
		return nil, fmt.Errorf("seed catalogs: %w", err)
	}
	return s, nil
}

func open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch cfg.Driver {
	case "sqlite", "":
		path := cfg.Path
		if path == "" {
			path = "data/python_learning.db"
		}
		return gorm.Open(sqlite.Open(path), gormCfg)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return gorm.Open(mysql.Open(dsn), gormCfg)
	}
	return nil, fmt.Errorf("unknown database driver %q (want sqlite or mysql)", cfg.Driver)
}

// seedCatalogs inserts the default resources, projects and practice problems
// into any catalog table that is currently empty. User data is never seeded.
func (s *Store) seedCatalogs() error {
	var count int64

	if err := s.DB.Model(&resourceRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		records := make([]resourceRecord, 0, len(seed.Resources()))
		for _, r := range seed.Resources() {
			records = append(records, resourceRecord{
				ID:          r.ID,
				Title:       r.Title,
				Type:        r.Type,
				Description: r.Description,
				URL:         r.URL,
				Level:       string(r.Level),
				Tags:        r.Tags,
			})
		}
		if err := s.DB.Create(&records).Error; err != nil {
			return err
		}
		logger.Log.Info("seeded resource catalog", zap.Int("count", len(records)))
	}

	if err := s.DB.Model(&projectRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		records := make([]projectRecord, 0, len(seed.Projects()))
		for _, p := range seed.Projects() {
			records = append(records, projectRecord{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Level:       string(p.Level),
				Difficulty:  p.Difficulty,
				Skills:      p.Skills,
				Details:     p.Details,
				StarterCode: p.StarterCode,
			})
		}
		if err := s.DB.Create(&records).Error; err != nil {
			return err
		}
		logger.Log.Info("seeded project catalog", zap.Int("count", len(records)))
	}

	if err := s.DB.Model(&problemRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		records := make([]problemRecord, 0, len(seed.PracticeProblems()))
		for _, p := range seed.PracticeProblems() {
			records = append(records, problemRecord{
				ID:          p.ID,
				Title:       p.Title,
				Difficulty:  p.Difficulty,
				Description: p.Description,
				URL:         p.URL,
				Platform:    p.Platform,
				Tags:        p.Tags,
			})
		}
		if err := s.DB.Create(&records).Error; err != nil {
			return err
		}
		logger.Log.Info("seeded practice problem catalog", zap.Int("count", len(records)))
	}

	return nil
}

// Resources loads the resource catalog in id order.
func (s *Store) Resources() []model.Resource {
	var records []resourceRecord
	if err := s.DB.Order("id").Find(&records).Error; err != nil {
		logger.Log.Warn("failed to load resources", zap.Error(err))
		return []model.Resource{}
	}
	out := make([]model.Resource, 0, len(records))
	for _, r := range records {
		out = append(out, r.toModel())
	}
	return out
}

// Projects loads the project catalog in id order.
func (s *Store) Projects() []model.Project {
	var records []projectRecord
	if err := s.DB.Order("id").Find(&records).Error; err != nil {
		logger.Log.Warn("failed to load projects", zap.Error(err))
		return []model.Project{}
	}
	out := make([]model.Project, 0, len(records))
	for _, p := range records {
		out = append(out, p.toModel())
	}
	return out
}
