package domain

import "time"

type Task struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;index" json:"userId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Day       string    `gorm:"size:32" json:"day,omitempty"` // optional bucket, e.g. "monday"
	CreatedAt time.Time `json:"createdAt"`
}

func (Task) TableName() string { return "tasks" }

type TaskRepository interface {
	Create(t *Task) error
	FindByID(id string) (*Task, error)
	List(userID, day string) ([]Task, error) // newest first; day "" lists all buckets
	Update(t *Task) error
	Delete(id string) error
}
