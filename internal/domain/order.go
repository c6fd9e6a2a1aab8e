package domain

import "time"

type Order struct {
	ID           string
	NumeroPedido int64
	ClienteID    string
	DataPedido   time.Time
	Status       string
	Total        float64
	Observacoes  *string
}

type OrderItem struct {
	ID            string
	PedidoID      string
	ProdutoID     string
	Quantidade    int
	PrecoUnitario float64
	Total         float64
}

const OrderStatusPendente = "pendente"

// OrderSummary is an order joined with its customer's display names, as the
// order list renders it.
type OrderSummary struct {
	Order
	ClienteNome        string
	ClienteNomeEmpresa *string
}

type OrderItemDetail struct {
	OrderItem
	ProdutoNome          string
	ProdutoCodigo        string
	ProdutoUnidadeMedida string
}

type OrderDetail struct {
	OrderSummary
	ClienteTelefone string
	ClienteEndereco *string
	Itens           []OrderItemDetail
}

// OrderTotal is the order total as persisted at creation time: the sum of
// the line item totals, each quantidade * preco_unitario.
func OrderTotal(items []OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantidade) * item.PrecoUnitario
	}
	return total
}
