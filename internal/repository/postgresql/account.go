package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/db"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/repository"
	"github.com/bidhuripriyanshu/transport-scheduler/internal/storage"
)

type AccountRepo struct {
	db db.DB
}

func NewAccountRepo(db db.DB) storage.AccountRepository {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) CreateAccount(ctx context.Context, name, email, password, role string) error {
	var count int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM accounts WHERE email = $1", email).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO accounts (id, name, email, password, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, uuid.NewString(), name, email, string(hashedPassword), role, time.Now().UTC())
	return err
}

// Authenticate resolves an account by email and checks the password
// against the stored bcrypt hash.
func (r *AccountRepo) Authenticate(ctx context.Context, email, password string) (*repository.Account, error) {
	var account repository.Account
	err := r.db.Get(ctx, &account, "SELECT * FROM accounts WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, repository.ErrInvalidCredentials
	}
	return &account, nil
}
