package dto

import "time"

type CreateOrderRequest struct {
	Cliente     *ClienteRef        `json:"cliente"`
	Itens       []OrderItemRequest `json:"itens"`
	Observacoes string             `json:"observacoes"`
}

type ClienteRef struct {
	ID string `json:"id"`
}

type OrderItemRequest struct {
	ProdutoID     string  `json:"produto_id"`
	Quantidade    int     `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`
	Total         float64 `json:"total"`
}

type CreateOrderResponse struct {
	Message      string `json:"message"`
	PedidoID     string `json:"pedidoId"`
	NumeroPedido int64  `json:"numeroPedido"`
}

// OrderItemInput is the coordinator's view of a line item: a product
// reference, a quantity and the unit price snapshotted by the caller.
type OrderItemInput struct {
	ProdutoID     string
	Quantidade    int
	PrecoUnitario float64
}

type CreateOrderResult struct {
	PedidoID     string
	NumeroPedido int64
	Total        float64
}

type OrderSummaryDTO struct {
	ID                 string    `json:"id"`
	NumeroPedido       int64     `json:"numero_pedido"`
	DataPedido         time.Time `json:"data_pedido"`
	ClienteNome        string    `json:"cliente_nome"`
	ClienteNomeEmpresa *string   `json:"cliente_nome_empresa"`
	Status             string    `json:"status"`
	Total              float64   `json:"total"`
	Observacoes        *string   `json:"observacoes"`
}

type OrderDetailDTO struct {
	ID                 string               `json:"id"`
	NumeroPedido       int64                `json:"numero_pedido"`
	DataPedido         time.Time            `json:"data_pedido"`
	ClienteNome        string               `json:"cliente_nome"`
	ClienteNomeEmpresa *string              `json:"cliente_nome_empresa"`
	ClienteTelefone    string               `json:"cliente_telefone"`
	ClienteEndereco    *string              `json:"cliente_endereco"`
	Status             string               `json:"status"`
	Total              float64              `json:"total"`
	Observacoes        *string              `json:"observacoes"`
	Itens              []OrderItemDetailDTO `json:"itens"`
}

type OrderItemDetailDTO struct {
	ProdutoID            string  `json:"produto_id"`
	Quantidade           int     `json:"quantidade"`
	PrecoUnitario        float64 `json:"preco_unitario"`
	Total                float64 `json:"total"`
	ProdutoNome          string  `json:"produto_nome"`
	ProdutoCodigo        string  `json:"produto_codigo"`
	ProdutoUnidadeMedida string  `json:"produto_unidade_medida"`
}
