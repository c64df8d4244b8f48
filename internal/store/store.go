package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/arielstudio/nail-scheduler/internal/models"
)

// Labels lógicos das coleções dentro da tabela genérica.
const (
	LabelConfig       = "SYSTEM_CONFIG"
	LabelServices     = "SYSTEM_SERVICES"
	LabelAppointments = "SYSTEM_APPOINTMENTS"
	LabelBlocked      = "SYSTEM_BLOCKED"
)

// Labels na ordem em que o controller as sincroniza.
var Labels = []string{
	LabelConfig,
	LabelServices,
	LabelAppointments,
	LabelBlocked,
}

// Adapter lê e grava registros na tabela genérica do backend. A tabela é
// orientada a append; quem decide update-vs-insert é o chamador, que
// conhece o id do registro vigente de cada label.
type Adapter interface {
	FetchAll(ctx context.Context) ([]models.StoreRecord, error)
	Append(ctx context.Context, label, payload string) (uint, error)
	Upsert(ctx context.Context, id uint, label, payload string) error
}

// --------------------------------------------------
// Redução "registro mais recente por label"
// --------------------------------------------------

// LatestByLabel agrupa por label e escolhe o registro mais recente. A
// redução é explícita porque a tabela pode acumular vários registros do
// mesmo label; não confiamos em dedup do lado do store.
func LatestByLabel(records []models.StoreRecord) map[string]models.StoreRecord {
	latest := make(map[string]models.StoreRecord)

	for _, rec := range records {
		cur, ok := latest[rec.Title]
		if !ok {
			latest[rec.Title] = rec
			continue
		}

		if rec.CreatedAt.After(cur.CreatedAt) ||
			(rec.CreatedAt.Equal(cur.CreatedAt) && rec.ID > cur.ID) {
			latest[rec.Title] = rec
		}
	}

	return latest
}

// --------------------------------------------------
// Implementação GORM
// --------------------------------------------------

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FetchAll(ctx context.Context) ([]models.StoreRecord, error) {
	var records []models.StoreRecord
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, Classify(err)
	}
	return records, nil
}

func (s *GormStore) Append(ctx context.Context, label, payload string) (uint, error) {
	rec := models.StoreRecord{
		Title:   label,
		Content: payload,
	}

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, Classify(err)
	}
	return rec.ID, nil
}

func (s *GormStore) Upsert(ctx context.Context, id uint, label, payload string) error {
	res := s.db.WithContext(ctx).
		Model(&models.StoreRecord{}).
		Where("id = ? AND title = ?", id, label).
		Update("content", payload)

	if res.Error != nil {
		return Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var _ Adapter = (*GormStore)(nil)
