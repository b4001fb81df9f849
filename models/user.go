package models

import (
	"time"
)

type UserRole string

const (
	RoleProvider UserRole = "PRESTADOR"
	RoleClient   UserRole = "CLIENTE"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"nome" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"senhaHash" gorm:"size:255"`
	Role         UserRole  `json:"role" gorm:"size:20"`
	Services     []Service `json:"servicos,omitempty" gorm:"foreignKey:ProviderID"`
	Hirings      []Hiring  `json:"contratacoes,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
