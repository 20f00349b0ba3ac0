package masteraccount

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// Repository репозиторий аккаунтов мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUsername получает активный аккаунт по логину
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.MasterAccount, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"username",
		"password_hash",
		"master_code",
		"is_active",
		"created_at",
	).
		From("master_accounts").
		Where(squirrel.Eq{"username": username}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.MasterAccount
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&account.MasterCode,
		&account.IsActive,
		&account.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan account: %v", ErrScanRow, err)
	}

	return &account, nil
}

// Upsert создает аккаунт или обновляет хеш пароля существующего
// Используется командой первоначального заполнения, поэтому идемпотентен
func (r *Repository) Upsert(ctx context.Context, account *domain.MasterAccount) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("master_accounts").
		Columns(
			"username",
			"password_hash",
			"master_code",
			"is_active",
		).
		Values(
			account.Username,
			account.PasswordHash,
			account.MasterCode,
			account.IsActive,
		).
		Suffix(`ON CONFLICT (username) DO UPDATE
			SET password_hash = EXCLUDED.password_hash,
			    master_code = EXCLUDED.master_code,
			    is_active = EXCLUDED.is_active`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	_, err = executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
