package request

import (
	"tourbook/internal/usecase/commands"
)

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=user guide"`
}

func (r SignUpRequest) ToInput() commands.SignUpInput {
	return commands.SignUpInput{
		Email:       r.Email,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		Role:        r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}
