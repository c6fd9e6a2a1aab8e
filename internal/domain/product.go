package domain

import "time"

type Product struct {
	ID            string
	Codigo        string
	Nome          string
	Descricao     *string
	Preco         float64
	Custo         *float64
	Estoque       int
	EstoqueMinimo int
	UnidadeMedida string
	Categoria     *string
	Ativo         bool
	DataCadastro  time.Time
}

const (
	UnidadeUnit       = "un"
	UnidadeQuilograma = "kg"
	UnidadeGrama      = "g"
	UnidadeLitro      = "l"
	UnidadeMililitro  = "ml"
)

func ValidUnidadeMedida(u string) bool {
	switch u {
	case UnidadeUnit, UnidadeQuilograma, UnidadeGrama, UnidadeLitro, UnidadeMililitro:
		return true
	}
	return false
}

func (p Product) BelowMinimumStock() bool {
	return p.Estoque < p.EstoqueMinimo
}
