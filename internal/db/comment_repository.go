package db

import (
	"github.com/mwhitlam/liftlog/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	database *gorm.DB
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{database: database}
}

func (repo *CommentRepository) Create(comment *models.Comment) error {
	return repo.database.Create(comment).Error
}

func (repo *CommentRepository) ListByWorkout(workoutID string) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	if err := repo.database.
		Where("workout_id = ?", workoutID).
		Order("posted_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
