package repo

import (
	"errors"

	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(t *domain.Task) error { return r.db.Create(t).Error }

func (r *TaskRepo) FindByID(id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *TaskRepo) List(userID, day string) ([]domain.Task, error) {
	q := r.db.Where("user_id = ?", userID)
	if day != "" {
		q = q.Where("day = ?", day)
	}
	var tasks []domain.Task
	err := q.Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepo) Update(t *domain.Task) error { return r.db.Save(t).Error }

func (r *TaskRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
