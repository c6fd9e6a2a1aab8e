package domain

type Customer struct {
	ID          string
	Nome        string
	Telefone    string
	Endereco    *string
	NomeEmpresa *string
	Bairro      *string
	Cidade      *string
	UF          *string
	CEP         *string
	Email       *string
	Ativo       bool
}
