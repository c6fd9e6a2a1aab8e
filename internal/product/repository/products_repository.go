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

const productColumns = `id, codigo, nome, descricao, preco, custo, estoque, estoque_minimo, unidade_medida, categoria, ativo, data_cadastro`

func (r *MySQLRepository) Search(ctx context.Context, term string, limit int) ([]domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM produtos
		WHERE nome LIKE CONCAT('%%', ?, '%%')
		LIMIT ?`, productColumns)

	rows, err := r.db.QueryContext(ctx, query, term, limit)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, p domain.Product) error {
	query := `
		INSERT INTO produtos (id, codigo, nome, descricao, preco, custo, estoque, estoque_minimo, unidade_medida, categoria, ativo)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Codigo, p.Nome, p.Descricao, p.Preco, p.Custo,
		p.Estoque, p.EstoqueMinimo, p.UnidadeMedida, p.Categoria, p.Ativo,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM produtos WHERE id = ?`, productColumns)

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.Preco, &p.Custo,
		&p.Estoque, &p.EstoqueMinimo, &p.UnidadeMedida, &p.Categoria,
		&p.Ativo, &p.DataCadastro,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Produto não encontrado")
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

func (r *MySQLRepository) Update(ctx context.Context, p domain.Product) error {
	query := `
		UPDATE produtos
		SET codigo = ?, nome = ?, descricao = ?, preco = ?, custo = ?,
		    estoque = ?, estoque_minimo = ?, unidade_medida = ?, categoria = ?, ativo = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Codigo, p.Nome, p.Descricao, p.Preco, p.Custo,
		p.Estoque, p.EstoqueMinimo, p.UnidadeMedida, p.Categoria, p.Ativo, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, err := r.FindByID(ctx, p.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM produtos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError("Produto não encontrado")
	}

	return nil
}

// MaxNumericCode returns the highest codigo interpreted as an integer, or 0
// when the table is empty. Codes are stored as text but assigned
// sequentially by convention.
func (r *MySQLRepository) MaxNumericCode(ctx context.Context) (int64, error) {
	var maxCode sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT MAX(CAST(codigo AS UNSIGNED)) FROM produtos`).Scan(&maxCode)
	if err != nil {
		return 0, fmt.Errorf("querying max product code: %w", err)
	}

	if !maxCode.Valid {
		return 0, nil
	}

	return maxCode.Int64, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.Preco, &p.Custo,
		&p.Estoque, &p.EstoqueMinimo, &p.UnidadeMedida, &p.Categoria,
		&p.Ativo, &p.DataCadastro,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning product row: %w", err)
	}
	return &p, nil
}
