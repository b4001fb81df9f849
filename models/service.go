package models

import (
	"time"
)

type Service struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	ProviderID  uint        `json:"prestadorId"`
	Provider    *User       `json:"prestador,omitempty" gorm:"foreignKey:ProviderID"`
	Category    string      `json:"tipo" gorm:"size:50"`
	Name        string      `json:"nome" gorm:"size:100;not null"`
	Description string      `json:"descricao" gorm:"size:255"`
	Variations  []Variation `json:"variacoes,omitempty" gorm:"foreignKey:ServiceID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Variation is a priced, timed offering within a Service.
type Variation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ServiceID   uint      `json:"servicoId"`
	Name        string    `json:"nome" gorm:"size:100;not null"`
	Price       float64   `json:"preco"`
	DurationMin int       `json:"duracaoMin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
