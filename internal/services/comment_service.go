package services

import (
	"strings"
	"time"

	"github.com/mwhitlam/liftlog/internal/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByWorkout(workoutID string) ([]models.Comment, error)
}

// CommentInput carries the comment form fields. Name and PostedAt are
// optional; comments are anonymous and need no session.
type CommentInput struct {
	Name      string
	Title     string
	Content   string
	PostedAt  time.Time
	WorkoutID string
}

type CommentService struct {
	comments CommentRepository
}

func NewCommentService(comments CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (service *CommentService) PostComment(input CommentInput) (models.Comment, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	input.WorkoutID = strings.TrimSpace(input.WorkoutID)

	if input.Title == "" || input.Content == "" || input.WorkoutID == "" {
		return models.Comment{}, ErrValidation
	}
	if input.Name == "" {
		input.Name = models.AnonymousCommentName
	}
	if input.PostedAt.IsZero() {
		input.PostedAt = time.Now()
	}

	comment := models.Comment{
		Name:      input.Name,
		Title:     input.Title,
		Content:   input.Content,
		PostedAt:  input.PostedAt,
		WorkoutID: input.WorkoutID,
	}
	if err := service.comments.Create(&comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// CommentsForWorkout returns only the comments attached to the given
// workout, newest first.
func (service *CommentService) CommentsForWorkout(workoutID string) ([]models.Comment, error) {
	return service.comments.ListByWorkout(strings.TrimSpace(workoutID))
}
