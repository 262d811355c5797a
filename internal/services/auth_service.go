package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sosw-app/sosw/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrIncorrectCredentials covers both unknown email and wrong password so
// that sign-in responses cannot be used to enumerate accounts.
var ErrIncorrectCredentials = errors.New("incorrect credentials")

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	ExistsByID(userID uint) (bool, error)
	Create(user *models.User) error
	UpdateFcmToken(userID uint, fcmToken string) error
	UpdateByID(userID uint, updates map[string]any) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// SignUp validates the input and creates the account. Validation failures
// come back as a field-to-message map with a nil error.
func (service *AuthService) SignUp(input SignUpInput, now time.Time, location *time.Location) (models.User, map[string]string, error) {
	data, fieldErrors := ValidateSignUp(input, now, location)
	if fieldErrors != nil {
		return models.User{}, fieldErrors, nil
	}

	exists, err := service.users.ExistsByNormalizedEmail(data.Email)
	if err != nil {
		return models.User{}, nil, err
	}
	if exists {
		return models.User{}, map[string]string{"email": "Email already registered"}, nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, nil, err
	}

	user := models.User{
		Email:        data.Email,
		FullName:     data.FullName,
		Gender:       data.Gender,
		DateOfBirth:  data.DateOfBirth,
		PasswordHash: string(passwordHash),
		FcmToken:     data.FcmToken,
		Role:         models.RoleParticipant,
		CreatedAt:    now.In(location),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, nil, err
	}
	return user, nil, nil
}

func (service *AuthService) SignIn(email string, password string) (models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	user, err := service.users.FindByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, ErrIncorrectCredentials
	}
	// Passwords are trimmed at signup, so compare against the trimmed form.
	trimmed := strings.TrimSpace(password)
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(trimmed)) != nil {
		return models.User{}, ErrIncorrectCredentials
	}
	return user, nil
}

func (service *AuthService) SetFcmToken(userID uint, fcmToken string) error {
	return service.users.UpdateFcmToken(userID, fcmToken)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) UserExists(userID uint) (bool, error) {
	return service.users.ExistsByID(userID)
}
