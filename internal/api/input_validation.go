package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mwhitlam/liftlog/internal/services"
)

type registerInput struct {
	Username  string `json:"username" form:"username"`
	Password  string `json:"password" form:"password"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Birthday  string `json:"birthday" form:"birthday"`
}

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type goalInput struct {
	CurrentWeight string `json:"current_weight" form:"current_weight"`
	TargetWeight  string `json:"target_weight" form:"target_weight"`
}

type commentInput struct {
	Name      string `json:"name" form:"name"`
	Title     string `json:"title" form:"title"`
	Content   string `json:"content" form:"content"`
	Posted    string `json:"posted_at" form:"posted_at"`
	WorkoutID string `json:"workout_id" form:"workout_id"`
}

func (handler *Handler) parseRegistration(c *fiber.Ctx) (services.RegistrationInput, error) {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return services.RegistrationInput{}, err
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Birthday = strings.TrimSpace(input.Birthday)

	if input.Username == "" || input.Password == "" ||
		input.FirstName == "" || input.LastName == "" || input.Birthday == "" {
		return services.RegistrationInput{}, errors.New("missing required field")
	}

	birthday, err := time.ParseInLocation("2006-01-02", input.Birthday, handler.location)
	if err != nil {
		return services.RegistrationInput{}, errors.New("invalid birthday")
	}

	return services.RegistrationInput{
		Username:  input.Username,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Birthday:  birthday,
	}, nil
}

func parseLogin(c *fiber.Ctx) (loginInput, error) {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return loginInput{}, err
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Password = strings.TrimSpace(input.Password)
	if input.Username == "" || input.Password == "" {
		return loginInput{}, errors.New("missing credentials")
	}
	return input, nil
}

// parseGoalWeights returns the required current weight and the
// optional target weight.
func parseGoalWeights(c *fiber.Ctx) (float64, *float64, error) {
	input := goalInput{}
	if err := c.BodyParser(&input); err != nil {
		return 0, nil, err
	}

	current, err := strconv.ParseFloat(strings.TrimSpace(input.CurrentWeight), 64)
	if err != nil {
		return 0, nil, errors.New("current weight is required")
	}

	rawTarget := strings.TrimSpace(input.TargetWeight)
	if rawTarget == "" {
		return current, nil, nil
	}
	target, err := strconv.ParseFloat(rawTarget, 64)
	if err != nil {
		return 0, nil, errors.New("invalid target weight")
	}
	return current, &target, nil
}

func (handler *Handler) parseComment(c *fiber.Ctx, workoutID string) (services.CommentInput, error) {
	input := commentInput{}
	if err := c.BodyParser(&input); err != nil {
		return services.CommentInput{}, err
	}

	posted := time.Time{}
	if raw := strings.TrimSpace(input.Posted); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
		if err != nil {
			return services.CommentInput{}, errors.New("invalid date")
		}
		posted = parsed
	}

	if strings.TrimSpace(input.WorkoutID) != "" {
		workoutID = input.WorkoutID
	}

	return services.CommentInput{
		Name:      input.Name,
		Title:     input.Title,
		Content:   input.Content,
		PostedAt:  posted,
		WorkoutID: workoutID,
	}, nil
}
