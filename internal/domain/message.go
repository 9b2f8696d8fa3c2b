package domain

import "time"

type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	Email     string    `gorm:"size:191" json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

type MessageRepository interface {
	Create(m *ContactMessage) error
	List() ([]ContactMessage, error) // newest first
	Delete(id string) error
}
