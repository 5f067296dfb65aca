package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/digimosa/exposure-scan/internal/models"
)

// scanRow is the relational shape of a scan. Composite fields are stored as
// JSON-typed columns. Seq gives a monotonic insertion order so newest-first
// listing stays stable even when timestamps collide.
type scanRow struct {
	Seq             int64  `gorm:"primaryKey"`
	ScanID          string `gorm:"uniqueIndex"`
	Platform        string
	Username        string
	ProfileURL      string
	AvatarURL       string
	RiskScore       int
	RiskLevel       string
	ScannedAt       time.Time
	Stats           models.ProfileStats `gorm:"serializer:json"`
	Findings        models.Findings     `gorm:"serializer:json"`
	Leaks           []string            `gorm:"serializer:json"`
	Recommendations []string            `gorm:"serializer:json"`
}

func (scanRow) TableName() string { return "scans" }

// GormStore persists scans in a sqlite table. Row-level atomicity gives the
// same visibility guarantees as FileStore without an explicit mutex.
type GormStore struct {
	db    *gorm.DB
	limit int
}

// NewGormStore opens (or creates) the sqlite database at path and migrates
// the scans table. A limit <= 0 falls back to DefaultHistoryLimit.
func NewGormStore(path string, limit int) (*GormStore, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&scanRow{}); err != nil {
		return nil, fmt.Errorf("migrate scans table: %w", err)
	}
	return &GormStore{db: db, limit: limit}, nil
}

func (s *GormStore) Create(result models.AnalysisResult) (*models.Scan, error) {
	row := rowFromResult(result)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		// Evict rows beyond the newest limit entries
		var seqs []int64
		if err := tx.Model(&scanRow{}).Order("seq desc").Pluck("seq", &seqs).Error; err != nil {
			return err
		}
		if len(seqs) > s.limit {
			return tx.Delete(&scanRow{}, "seq IN ?", seqs[s.limit:]).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	scan := row.toScan()
	return &scan, nil
}

func (s *GormStore) List() ([]models.Scan, error) {
	var rows []scanRow
	if err := s.db.Order("seq desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	scans := make([]models.Scan, 0, len(rows))
	for i := range rows {
		scans = append(scans, rows[i].toScan())
	}
	return scans, nil
}

func (s *GormStore) Get(id string) (*models.Scan, error) {
	var row scanRow
	err := s.db.First(&row, "scan_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	scan := row.toScan()
	return &scan, nil
}

func (s *GormStore) Clear() error {
	return s.db.Where("1 = 1").Delete(&scanRow{}).Error
}

func rowFromResult(result models.AnalysisResult) *scanRow {
	return &scanRow{
		ScanID:          uuid.NewString(),
		Platform:        result.Platform,
		Username:        result.Username,
		ProfileURL:      result.ProfileURL,
		AvatarURL:       result.AvatarURL,
		RiskScore:       result.RiskScore,
		RiskLevel:       string(result.RiskLevel),
		ScannedAt:       time.Now().UTC(),
		Stats:           result.Stats,
		Findings:        result.Findings,
		Leaks:           result.Leaks,
		Recommendations: result.Recommendations,
	}
}

func (r *scanRow) toScan() models.Scan {
	return models.Scan{
		ID: r.ScanID,
		AnalysisResult: models.AnalysisResult{
			Platform:        r.Platform,
			Username:        r.Username,
			ProfileURL:      r.ProfileURL,
			AvatarURL:       r.AvatarURL,
			RiskScore:       r.RiskScore,
			RiskLevel:       models.RiskLevel(r.RiskLevel),
			Stats:           r.Stats,
			Leaks:           r.Leaks,
			Findings:        r.Findings,
			Recommendations: r.Recommendations,
		},
		ScannedAt: r.ScannedAt,
	}
}
