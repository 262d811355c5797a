package services

import (
	"strings"

	"github.com/sosw-app/sosw/internal/models"
)

type SetupService struct {
	users AuthUserRepository
}

func NewSetupService(users AuthUserRepository) *SetupService {
	return &SetupService{users: users}
}

// PromoteAdmin grants the admin role to an already-registered account.
// Returns true when a promotion happened; a missing account is not an error
// so startup can run before the operator has signed up.
func (service *SetupService) PromoteAdmin(email string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false, nil
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil || !exists {
		return false, err
	}

	user, err := service.users.FindByNormalizedEmail(normalized)
	if err != nil {
		return false, err
	}
	if user.Role == models.RoleAdmin {
		return false, nil
	}

	if err := service.users.UpdateByID(user.ID, map[string]any{"role": models.RoleAdmin}); err != nil {
		return false, err
	}
	return true, nil
}
