package models

import "time"

// StoreRecord é uma linha da tabela genérica do backend gerenciado.
// A tabela é orientada a append: cada gravação pode criar um registro
// novo, e o valor vigente de cada label é o registro mais recente.
type StoreRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:50;index;not null" json:"title"`
	Content string `gorm:"type:text" json:"content"`
	Image   string `gorm:"type:text" json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
