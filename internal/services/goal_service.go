package services

import (
	"errors"

	"github.com/mwhitlam/liftlog/internal/models"
	"gorm.io/gorm"
)

type GoalRepository interface {
	FindByUsername(username string) (models.Goal, error)
	ExistsByUsername(username string) (bool, error)
	Create(goal *models.Goal) error
	UpdateWeights(username string, currentWeight float64, targetWeight *float64) error
}

type GoalService struct {
	goals GoalRepository
}

func NewGoalService(goals GoalRepository) *GoalService {
	return &GoalService{goals: goals}
}

// SetGoal creates the account's goal record. Current weight is
// required and must be positive; target weight is optional.
func (service *GoalService) SetGoal(username string, currentWeight float64, targetWeight *float64) (models.Goal, error) {
	if currentWeight <= 0 {
		return models.Goal{}, ErrValidation
	}
	if targetWeight != nil && *targetWeight <= 0 {
		return models.Goal{}, ErrValidation
	}

	exists, err := service.goals.ExistsByUsername(username)
	if err != nil {
		return models.Goal{}, err
	}
	if exists {
		return models.Goal{}, ErrGoalExists
	}

	goal := models.Goal{
		Username:      username,
		CurrentWeight: currentWeight,
		TargetWeight:  targetWeight,
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// UpdateGoal overwrites both weight fields in place.
func (service *GoalService) UpdateGoal(username string, currentWeight float64, targetWeight *float64) (models.Goal, error) {
	if currentWeight <= 0 {
		return models.Goal{}, ErrValidation
	}
	if targetWeight != nil && *targetWeight <= 0 {
		return models.Goal{}, ErrValidation
	}

	if _, err := service.GoalFor(username); err != nil {
		return models.Goal{}, err
	}

	if err := service.goals.UpdateWeights(username, currentWeight, targetWeight); err != nil {
		return models.Goal{}, err
	}
	return service.GoalFor(username)
}

func (service *GoalService) GoalFor(username string) (models.Goal, error) {
	goal, err := service.goals.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Goal{}, ErrNotFound
	}
	if err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}
