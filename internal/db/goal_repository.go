package db

import (
	"github.com/mwhitlam/liftlog/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) FindByUsername(username string) (models.Goal, error) {
	var goal models.Goal
	if err := repo.database.Where("username = ?", username).First(&goal).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (repo *GoalRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Goal{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) UpdateWeights(username string, currentWeight float64, targetWeight *float64) error {
	return repo.database.Model(&models.Goal{}).Where("username = ?", username).Updates(map[string]any{
		"current_weight": currentWeight,
		"target_weight":  targetWeight,
	}).Error
}
