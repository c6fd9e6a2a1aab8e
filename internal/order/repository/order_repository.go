package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert persists the order row inside tx and returns the store-assigned
// sequential numero_pedido (an AUTO_INCREMENT column, surfaced through
// LastInsertId).
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (int64, error) {
	query := `INSERT INTO pedidos (id, cliente_id, observacoes, status, total) VALUES (?, ?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query,
		order.ID, order.ClienteID, order.Observacoes, order.Status, order.Total,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	numeroPedido, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting order number: %w", err)
	}

	return numeroPedido, nil
}

func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.OrderSummary, error) {
	query := `
		SELECT p.id, p.numero_pedido, p.data_pedido, c.nome, c.nome_empresa,
		       p.status, p.total, p.observacoes
		FROM pedidos p
		JOIN clientes c ON p.cliente_id = c.id
		ORDER BY p.data_pedido DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.OrderSummary{}
	for rows.Next() {
		var o domain.OrderSummary
		err := rows.Scan(
			&o.ID, &o.NumeroPedido, &o.DataPedido, &o.ClienteNome, &o.ClienteNomeEmpresa,
			&o.Status, &o.Total, &o.Observacoes,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) FindDetailByID(ctx context.Context, id string) (*domain.OrderDetail, error) {
	query := `
		SELECT p.id, p.numero_pedido, p.data_pedido, c.nome, c.nome_empresa,
		       c.telefone, c.endereco, p.status, p.total, p.observacoes
		FROM pedidos p
		JOIN clientes c ON p.cliente_id = c.id
		WHERE p.id = ?
	`

	var detail domain.OrderDetail
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&detail.ID, &detail.NumeroPedido, &detail.DataPedido,
		&detail.ClienteNome, &detail.ClienteNomeEmpresa,
		&detail.ClienteTelefone, &detail.ClienteEndereco,
		&detail.Status, &detail.Total, &detail.Observacoes,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("Pedido não encontrado")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	itemsQuery := `
		SELECT ip.produto_id, ip.quantidade, ip.preco_unitario, ip.total,
		       prod.nome, prod.codigo, prod.unidade_medida
		FROM itens_pedido ip
		JOIN produtos prod ON ip.produto_id = prod.id
		WHERE ip.pedido_id = ?
	`

	rows, err := r.db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	detail.Itens = []domain.OrderItemDetail{}
	for rows.Next() {
		var item domain.OrderItemDetail
		err := rows.Scan(
			&item.ProdutoID, &item.Quantidade, &item.PrecoUnitario, &item.Total,
			&item.ProdutoNome, &item.ProdutoCodigo, &item.ProdutoUnidadeMedida,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		detail.Itens = append(detail.Itens, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return &detail, nil
}
