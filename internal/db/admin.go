package db

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/config"
)

// InitAdmin seeds a transporter account from the environment so a fresh
// deployment has a caller able to drive shipment transitions.
func InitAdmin(ctx context.Context, database *Database, cfg config.Config, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("no admin account configured, skipping seed")
		return nil
	}

	var count int
	err := database.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM accounts WHERE email = $1", cfg.AdminEmail).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("admin account already exists", zap.String("email", cfg.AdminEmail))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = database.Exec(ctx, `
        INSERT INTO accounts (id, name, email, password, role, created_at)
        VALUES ($1, 'Admin', $2, $3, 'transporter', now())
    `, uuid.NewString(), cfg.AdminEmail, string(hashed))
	if err != nil {
		return err
	}

	log.Info("admin transporter account created", zap.String("email", cfg.AdminEmail))
	return nil
}
