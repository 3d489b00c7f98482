// Package telegram models the Telegram Mini App host runtime: the signed
// init data a client launches with, the user it carries, and the WebApp
// bridge the client exposes for UI control and haptics.
package telegram

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PlaceholderUserID is the id of the user substituted outside a Telegram host.
const PlaceholderUserID = 111111

var (
	// ErrUserDataMissing is returned when a host context carries no user.
	ErrUserDataMissing = errors.New("telegram user data not found")
	// ErrInvalidUser is returned when the user record fails validation.
	ErrInvalidUser = errors.New("invalid telegram user")
)

var validate = validator.New()

// User is the Telegram user as delivered in init data.
type User struct {
	ID           int64  `json:"id" validate:"required,gt=0"`
	FirstName    string `json:"first_name" validate:"required,max=256"`
	LastName     string `json:"last_name,omitempty" validate:"max=256"`
	Username     string `json:"username,omitempty" validate:"omitempty,max=64"`
	LanguageCode string `json:"language_code,omitempty" validate:"omitempty,max=35"`
	IsPremium    bool   `json:"is_premium,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// PlaceholderUser returns the fixed user used outside a Telegram host.
func PlaceholderUser() *User {
	return &User{
		ID:        PlaceholderUserID,
		FirstName: "Test",
	}
}

// Validate checks the required fields of the user record.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserDataMissing
	}
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	return nil
}

// ResolveUser returns the user for a launch.
//
// Outside a host context (no init data at all) the placeholder user is
// returned. Inside a host context the init data must carry a valid user;
// anything else is a hard failure.
func ResolveUser(data *InitData) (*User, error) {
	if data == nil {
		return PlaceholderUser(), nil
	}
	if data.User == nil {
		return nil, ErrUserDataMissing
	}
	if err := data.User.Validate(); err != nil {
		return nil, err
	}
	return data.User, nil
}
