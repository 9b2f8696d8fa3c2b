package router

import (
	"gorm.io/gorm"

	"quebrada-backend/internal/domain"
	"quebrada-backend/internal/repo"
)

func productRepo(db *gorm.DB) domain.ProductRepository   { return repo.NewProductRepo(db) }
func categoryRepo(db *gorm.DB) domain.CategoryRepository { return repo.NewCategoryRepo(db) }
func userRepo(db *gorm.DB) domain.UserRepository         { return repo.NewUserRepo(db) }
func messageRepo(db *gorm.DB) domain.MessageRepository   { return repo.NewMessageRepo(db) }
func taskRepo(db *gorm.DB) domain.TaskRepository         { return repo.NewTaskRepo(db) }
