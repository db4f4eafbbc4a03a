// services/admin_accounts.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"orderdesk-backend/models"
	"orderdesk-backend/utils"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminAccounts authenticates administrators.
type AdminAccounts struct {
	store AdminStore
}

func NewAdminAccounts(store AdminStore) *AdminAccounts {
	return &AdminAccounts{store: store}
}

// Bootstrap makes sure an account with email exists and accepts password.
func (a *AdminAccounts) Bootstrap(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := a.store.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return a.store.Create(ctx, &models.AdminUser{
			Email:    email,
			Password: password,
			Name:     "Admin",
		})
	}
	if err != nil {
		return err
	}
	if utils.CheckPasswordHash(password, user.Password) {
		return nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return a.store.SetPassword(ctx, user.ID, hash)
}

// Authenticate checks the credentials and records the login time.
func (a *AdminAccounts) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := a.store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := a.store.TouchLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return user, nil
}

func (a *AdminAccounts) Get(ctx context.Context, id string) (*models.AdminUser, error) {
	return a.store.Get(ctx, id)
}
