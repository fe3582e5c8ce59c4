package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/accountrest/account-service/internal/cache"
	"github.com/accountrest/account-service/internal/models"
)

// ErrNotFound signals that no account exists for the requested id.
var ErrNotFound = errors.New("account not found")

// AccountRepository persists accounts in PostgreSQL (the source of truth) and
// keeps an optional Redis projection warm for single-record reads. Every
// mutation auto-commits before returning, so a subsequent read by any request
// observes the change.
type AccountRepository struct {
	db    *sql.DB
	cache *cache.AccountCache
}

// NewAccountRepository wires a repository over db. redisClient may be nil, in
// which case the read cache is disabled and every read hits PostgreSQL.
func NewAccountRepository(db *sql.DB, redisClient *goredis.Client) *AccountRepository {
	r := &AccountRepository{db: db}
	if redisClient != nil {
		r.cache = cache.NewAccountCache(redisClient, 0)
	}
	return r
}

// Create persists a new account and assigns its id. This is the only place
// ids are generated; date_joined defaults to today when the caller left it
// unset. A constraint violation here means validation upstream was bypassed
// and surfaces as a plain error, not ErrNotFound.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	if account.DateJoined == "" {
		account.DateJoined = time.Now().UTC().Format(models.DateLayout)
	}
	query := `
		INSERT INTO accounts (name, email, address, phone_number, date_joined)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.Email, account.Address,
		account.PhoneNumber, account.DateJoined,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	if r.cache != nil {
		r.cache.Put(ctx, account)
	}
	return nil
}

// FindByID returns the account with the given id, trying Redis first and
// warming the cache on a cold read. Returns ErrNotFound when no row exists.
func (r *AccountRepository) FindByID(ctx context.Context, id int) (*models.Account, error) {
	if r.cache != nil {
		if account, ok := r.cache.Get(ctx, id); ok {
			return account, nil
		}
	}

	query := `
		SELECT id, name, email, address, phone_number, date_joined
		FROM accounts
		WHERE id = $1
	`
	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if r.cache != nil {
		r.cache.Put(ctx, account)
	}
	return account, nil
}

// ListAll returns every account in insertion order. An empty table yields an
// empty slice, not an error.
func (r *AccountRepository) ListAll(ctx context.Context) ([]models.Account, error) {
	query := `
		SELECT id, name, email, address, phone_number, date_joined
		FROM accounts
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Update overwrites every field of an existing account in one statement, so
// the replacement is all-or-nothing. The id is never changed. Returns
// ErrNotFound when the row no longer exists. An unset date_joined becomes
// today, mirroring Create.
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	if account.DateJoined == "" {
		account.DateJoined = time.Now().UTC().Format(models.DateLayout)
	}
	query := `
		UPDATE accounts
		SET name = $2, email = $3, address = $4, phone_number = $5, date_joined = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.Email, account.Address,
		account.PhoneNumber, account.DateJoined,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	if r.cache != nil {
		r.cache.Put(ctx, account)
	}
	return nil
}

// Delete removes the account row for good. Returns ErrNotFound when nothing
// was deleted; the handler decides the 404 semantics.
func (r *AccountRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM accounts WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	if r.cache != nil {
		r.cache.Invalidate(ctx, id)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		account    models.Account
		phone      sql.NullString
		dateJoined time.Time
	)
	if err := row.Scan(
		&account.ID, &account.Name, &account.Email,
		&account.Address, &phone, &dateJoined,
	); err != nil {
		return nil, err
	}
	if phone.Valid {
		account.PhoneNumber = &phone.String
	}
	account.DateJoined = dateJoined.Format(models.DateLayout)
	return &account, nil
}
