package product

import (
	"time"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"
)

type ProductRequest struct {
	Codigo        string   `json:"codigo"`
	Nome          string   `json:"nome"`
	Descricao     *string  `json:"descricao"`
	Preco         float64  `json:"preco"`
	Custo         *float64 `json:"custo"`
	Estoque       int      `json:"estoque"`
	EstoqueMinimo int      `json:"estoque_minimo"`
	UnidadeMedida string   `json:"unidade_medida"`
	Categoria     *string  `json:"categoria"`
	Ativo         bool     `json:"ativo"`
}

// Preco and Custo are scanned into float64 so they serialize as JSON
// numbers, never as the DECIMAL column's string form.
type ProductDTO struct {
	ID            string    `json:"id"`
	Codigo        string    `json:"codigo"`
	Nome          string    `json:"nome"`
	Descricao     *string   `json:"descricao"`
	Preco         float64   `json:"preco"`
	Custo         *float64  `json:"custo"`
	Estoque       int       `json:"estoque"`
	EstoqueMinimo int       `json:"estoque_minimo"`
	UnidadeMedida string    `json:"unidade_medida"`
	Categoria     *string   `json:"categoria"`
	Ativo         bool      `json:"ativo"`
	DataCadastro  time.Time `json:"data_cadastro"`
}

func toDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Preco:         p.Preco,
		Custo:         p.Custo,
		Estoque:       p.Estoque,
		EstoqueMinimo: p.EstoqueMinimo,
		UnidadeMedida: p.UnidadeMedida,
		Categoria:     p.Categoria,
		Ativo:         p.Ativo,
		DataCadastro:  p.DataCadastro,
	}
}

func (r ProductRequest) toDomain(id string) domain.Product {
	return domain.Product{
		ID:            id,
		Codigo:        r.Codigo,
		Nome:          r.Nome,
		Descricao:     r.Descricao,
		Preco:         r.Preco,
		Custo:         r.Custo,
		Estoque:       r.Estoque,
		EstoqueMinimo: r.EstoqueMinimo,
		UnidadeMedida: r.UnidadeMedida,
		Categoria:     r.Categoria,
		Ativo:         r.Ativo,
	}
}
