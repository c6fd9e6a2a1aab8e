package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

// ER_DUP_ENTRY, raised when the unique email index is violated.
const mysqlDuplicateEntry = 1062

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nome, email, role FROM usuarios`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, nome, email, hashed_password, role FROM usuarios WHERE id = ?`

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Nome, &u.Email, &u.HashedPassword, &u.Role)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Usuário não encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	return &u, nil
}

func (r *MySQLRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, nome, email, hashed_password, role FROM usuarios WHERE email = ?`

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Nome, &u.Email, &u.HashedPassword, &u.Role)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Usuário não encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	return &u, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, u domain.User) error {
	query := `INSERT INTO usuarios (id, nome, email, hashed_password, role) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, u.ID, u.Nome, u.Email, u.HashedPassword, u.Role)
	if err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError("Email já cadastrado")
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

func (r *MySQLRepository) Update(ctx context.Context, u domain.User) error {
	query := `UPDATE usuarios SET nome = ?, email = ?, role = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, u.Nome, u.Email, u.Role, u.ID)
	if err != nil {
		if isDuplicateEntry(err) {
			return errors.NewConflictError("O email informado já está em uso por outro usuário.")
		}
		return fmt.Errorf("updating user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, err := r.FindByID(ctx, u.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *MySQLRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE usuarios SET hashed_password = ? WHERE id = ?`, hashedPassword, id)
	if err != nil {
		return fmt.Errorf("updating user password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError("Usuário não encontrado.")
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError("Usuário não encontrado.")
	}

	return nil
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if stderrors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
