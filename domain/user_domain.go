package domain

import (
	"errors"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login success"
	MessageSuccessGetMe      = "success get profile"
	MessageSuccessSendInvite = "invitation sent successfully"
	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGetMe       = "failed to get profile"
	MessageFailedSendInvite  = "failed to send invitation"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrFamilyNotFound     = errors.New("family not found")
	ErrInviteCodeInvalid  = errors.New("invalid invite code")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Name       string `json:"name" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Password   string `json:"password" validate:"required,min=8"`
		FamilyName string `json:"family_name" validate:"omitempty"`
		InviteCode string `json:"invite_code" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		FamilyID string `json:"family_id"`
		Role     string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Name     string `json:"name"`
		FamilyID string `json:"family_id"`
		Role     string `json:"role"`
	}

	MeResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		FamilyID   string `json:"family_id"`
		FamilyName string `json:"family_name"`
		Role       string `json:"role"`
	}

	InviteMemberRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
