package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister             = "user registered successfully"
	MessageSuccessLogin                = "login success"
	MessageSuccessGetMe                = "user profile retrieved successfully"
	MessageSuccessUpdateUser           = "user profile updated successfully"
	MessageSuccessChangePassword       = "password changed successfully"
	MessageSuccessSendVerificationMail = "verification email sent"
	MessageSuccessVerifyEmail          = "email verified successfully"
	MessageSuccessForgotPassword       = "password reset email sent"
	MessageSuccessResetPassword        = "password reset successfully"
	MessageSuccessUploadAvatar         = "profile picture uploaded successfully"

	MessageFailedRegister             = "failed to register user"
	MessageFailedLogin                = "failed to login"
	MessageFailedGetMe                = "failed to retrieve user profile"
	MessageFailedUpdateUser           = "failed to update user profile"
	MessageFailedChangePassword       = "failed to change password"
	MessageFailedSendVerificationMail = "failed to send verification email"
	MessageFailedVerifyEmail          = "failed to verify email"
	MessageFailedForgotPassword       = "failed to send password reset email"
	MessageFailedResetPassword        = "failed to reset password"
	MessageFailedUploadAvatar         = "failed to upload profile picture"

	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrCredentialsInvalid  = errors.New("invalid email or password")
	ErrPasswordNotMatch    = errors.New("current password does not match")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrEmailAlreadyVerifed = errors.New("email already verified")
)

// Profile defaults applied at registration.
const (
	DefaultLanguage = "fr"
	DefaultTheme    = "light"
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID                   string `json:"id"`
		Email                string `json:"email"`
		Name                 string `json:"name"`
		Username             string `json:"username"`
		Bio                  string `json:"bio"`
		Language             string `json:"language"`
		Theme                string `json:"theme"`
		NotificationsEnabled bool   `json:"notifications_enabled"`
		IsVerified           bool   `json:"is_verified"`
		ProfilePictureURL    string `json:"profile_picture_url,omitempty"`
	}

	// UpdateUserRequest lists the mutable profile fields explicitly; email
	// and password change through their own flows.
	UpdateUserRequest struct {
		Name                 string `json:"name" validate:"omitempty"`
		Username             string `json:"username" validate:"omitempty"`
		Bio                  string `json:"bio" validate:"omitempty"`
		Language             string `json:"language" validate:"omitempty"`
		Theme                string `json:"theme" validate:"omitempty,oneof=light dark"`
		NotificationsEnabled *bool  `json:"notifications_enabled" validate:"omitempty"`
	}

	// ChangePasswordRequest requires the current password as
	// re-authentication before the sensitive mutation.
	ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	SendVerificationEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}
)
