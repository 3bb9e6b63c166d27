package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"team-generator/internal/domain"
)

var validate = validator.New()

// PlayerInput содержит данные игрока, введённые пользователем.
type PlayerInput struct {
	Name  string `validate:"required,max=100"`
	Skill int    `validate:"min=1,max=10"`
}

// ValidatePlayer нормализует и проверяет данные игрока.
func ValidatePlayer(input PlayerInput) (PlayerInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validate.Struct(input); err != nil {
		return PlayerInput{}, fmt.Errorf("%w: %v", domain.ErrInvalidParticipant, err)
	}
	return input, nil
}
