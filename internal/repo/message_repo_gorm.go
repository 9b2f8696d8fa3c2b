package repo

import (
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
)

type MessageRepo struct{ db *gorm.DB }

func NewMessageRepo(db *gorm.DB) *MessageRepo { return &MessageRepo{db: db} }

func (r *MessageRepo) Create(m *domain.ContactMessage) error { return r.db.Create(m).Error }

func (r *MessageRepo) List() ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	err := r.db.Order("created_at desc").Find(&messages).Error
	return messages, err
}

func (r *MessageRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.ContactMessage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
