package services

import (
	"errors"
	"strings"
	"time"

	"github.com/mwhitlam/liftlog/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	ExistsByUsername(username string) (bool, error)
	FindByUsername(username string) (models.User, error)
	Create(user *models.User) error
	DeleteAccountAndRelatedData(username string) error
}

// RegistrationInput carries the register form fields. All of them are
// required; the password arrives raw and is hashed here.
type RegistrationInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Birthday  time.Time
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates the account with a bcrypt hash of the password.
// The plaintext password is never stored.
func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)

	if input.Username == "" || input.Password == "" ||
		input.FirstName == "" || input.LastName == "" || input.Birthday.IsZero() {
		return models.User{}, ErrValidation
	}

	exists, err := service.users.ExistsByUsername(input.Username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(passwordHash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Birthday:     input.Birthday,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		// The unique constraint can race with the existence check above;
		// anything else is a store failure and must stay one.
		if taken, checkErr := service.users.ExistsByUsername(input.Username); checkErr == nil && taken {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate looks up the account and compares the password against
// the stored hash. Unknown username and wrong password both come back
// as ErrInvalidCredentials.
func (service *AuthService) Authenticate(username string, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByUsername(username string) (models.User, error) {
	user, err := service.users.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteAccount removes the account and cascades to its goal record.
func (service *AuthService) DeleteAccount(username string) error {
	return service.users.DeleteAccountAndRelatedData(username)
}
