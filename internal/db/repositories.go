package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Goals    *GoalRepository
	Comments *CommentRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Goals:    NewGoalRepository(database),
		Comments: NewCommentRepository(database),
	}
}
