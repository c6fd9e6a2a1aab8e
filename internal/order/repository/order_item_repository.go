package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

type MySQLOrderItemRepository struct {
	db *sql.DB
}

func NewMySQLOrderItemRepository(db *sql.DB) *MySQLOrderItemRepository {
	return &MySQLOrderItemRepository{db: db}
}

func (r *MySQLOrderItemRepository) Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) error {
	query := `INSERT INTO itens_pedido (id, pedido_id, produto_id, quantidade, preco_unitario, total) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := tx.ExecContext(ctx, query,
		item.ID, item.PedidoID, item.ProdutoID, item.Quantidade, item.PrecoUnitario, item.Total,
	)
	if err != nil {
		return fmt.Errorf("inserting order item: %w", err)
	}

	return nil
}
