package customer

import "github.com/wesleypiresbh/doces-sabor-de-mel/internal/domain"

type CustomerRequest struct {
	NomeEmpresa *string `json:"nomeEmpresa"`
	Nome        string  `json:"nome"`
	Telefone    string  `json:"telefone"`
	Endereco    *string `json:"endereco"`
	Bairro      *string `json:"bairro"`
	Cidade      *string `json:"cidade"`
	UF          *string `json:"uf"`
	CEP         *string `json:"cep"`
	Email       *string `json:"email"`
	Ativo       bool    `json:"ativo"`
}

type CustomerDTO struct {
	ID          string  `json:"id"`
	Nome        string  `json:"nome"`
	Telefone    string  `json:"telefone"`
	Endereco    *string `json:"endereco"`
	NomeEmpresa *string `json:"nome_empresa"`
	Bairro      *string `json:"bairro"`
	Cidade      *string `json:"cidade"`
	UF          *string `json:"uf"`
	CEP         *string `json:"cep"`
	Email       *string `json:"email"`
	Ativo       bool    `json:"ativo"`
}

func toDTO(c domain.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID,
		Nome:        c.Nome,
		Telefone:    c.Telefone,
		Endereco:    c.Endereco,
		NomeEmpresa: c.NomeEmpresa,
		Bairro:      c.Bairro,
		Cidade:      c.Cidade,
		UF:          c.UF,
		CEP:         c.CEP,
		Email:       c.Email,
		Ativo:       c.Ativo,
	}
}

func (r CustomerRequest) toDomain(id string) domain.Customer {
	return domain.Customer{
		ID:          id,
		Nome:        r.Nome,
		Telefone:    r.Telefone,
		Endereco:    r.Endereco,
		NomeEmpresa: r.NomeEmpresa,
		Bairro:      r.Bairro,
		Cidade:      r.Cidade,
		UF:          r.UF,
		CEP:         r.CEP,
		Email:       r.Email,
		Ativo:       r.Ativo,
	}
}
