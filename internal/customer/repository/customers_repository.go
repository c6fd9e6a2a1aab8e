package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

const customerColumns = `id, nome, telefone, endereco, nome_empresa, bairro, cidade, uf, cep, email, ativo`

func (r *MySQLRepository) Search(ctx context.Context, term string, limit int) ([]domain.Customer, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clientes
		WHERE nome LIKE CONCAT('%%', ?, '%%') OR nome_empresa LIKE CONCAT('%%', ?, '%%')
		LIMIT ?`, customerColumns)

	rows, err := r.db.QueryContext(ctx, query, term, term, limit)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, c domain.Customer) error {
	query := `
		INSERT INTO clientes (id, nome, telefone, endereco, nome_empresa, bairro, cidade, uf, cep, email, ativo)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Nome, c.Telefone, c.Endereco, c.NomeEmpresa,
		c.Bairro, c.Cidade, c.UF, c.CEP, c.Email, c.Ativo,
	)
	if err != nil {
		return fmt.Errorf("inserting customer: %w", err)
	}

	return nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM clientes WHERE id = ?`, customerColumns)

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Nome, &c.Telefone, &c.Endereco, &c.NomeEmpresa,
		&c.Bairro, &c.Cidade, &c.UF, &c.CEP, &c.Email, &c.Ativo,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Cliente não encontrado")
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by id: %w", err)
	}

	return &c, nil
}

func (r *MySQLRepository) Update(ctx context.Context, c domain.Customer) error {
	query := `
		UPDATE clientes
		SET nome = ?, telefone = ?, endereco = ?, nome_empresa = ?, bairro = ?,
		    cidade = ?, uf = ?, cep = ?, email = ?, ativo = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Nome, c.Telefone, c.Endereco, c.NomeEmpresa, c.Bairro,
		c.Cidade, c.UF, c.CEP, c.Email, c.Ativo, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Distinguish "missing" from "unchanged": MySQL reports zero
		// affected rows for both.
		if _, err := r.FindByID(ctx, c.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError("Cliente não encontrado")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.Nome, &c.Telefone, &c.Endereco, &c.NomeEmpresa,
		&c.Bairro, &c.Cidade, &c.UF, &c.CEP, &c.Email, &c.Ativo,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning customer row: %w", err)
	}
	return &c, nil
}
