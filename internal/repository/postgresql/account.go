package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhub/ems-backend-go/internal/domain/account"
	"github.com/staffhub/ems-backend-go/internal/pkg/database"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.Repository {
	return &accountRepositoryImpl{db: db}
}

const accountColumns = `id, email, password_hash, role, created_at, updated_at`

func scanAccount(row pgx.Row) (account.Account, error) {
	var found account.Account
	err := row.Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	return found, err
}

// GetByEmail implements account.Repository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE email = $1
	`

	found, err := scanAccount(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return found, nil
}

// GetByID implements account.Repository.
func (r *accountRepositoryImpl) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
	`

	found, err := scanAccount(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, err
	}

	return found, nil
}

// Create implements account.Repository.
func (r *accountRepositoryImpl) Create(ctx context.Context, newAccount account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING ` + accountColumns + `
	`

	created, err := scanAccount(q.QueryRow(ctx, query,
		newAccount.Email,
		newAccount.PasswordHash,
		newAccount.Role,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return account.Account{}, account.ErrEmailExists
		}
		return account.Account{}, err
	}

	return created, nil
}

// Update implements account.Repository.
func (r *accountRepositoryImpl) Update(ctx context.Context, req account.UpdateAccountRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET email = COALESCE($1, email),
			password_hash = COALESCE($2, password_hash),
			role = COALESCE($3, role),
			updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, req.Email, req.PasswordHash, req.Role, req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

// UpdatePassword implements account.Repository.
func (r *accountRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

// Delete implements account.Repository.
func (r *accountRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	return err
}

// isUniqueViolation reports a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports a Postgres foreign_key_violation (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
