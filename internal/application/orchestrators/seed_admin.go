package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"motive/internal/domain/account"
)

// SeedAdminDeps holds dependencies for the admin seed.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// ExecuteSeedAdmin creates the dashboard admin account if it does not
// already exist. Idempotent across restarts.
// PRE: email and password are non-empty
// POST: An admin account with the given email exists
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, email, password string) error {
	if _, err := deps.AccountStore.GetByEmail(ctx, email); err == nil {
		return nil
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      account.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := acct.Validate(); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := acct.SetPassword(password); err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}
	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	slog.Info("seed_event", "event", "admin_account_created", "email", email)
	return nil
}
