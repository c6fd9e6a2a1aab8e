package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'sabordemel_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/sabordemel_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"itens_pedido", "pedidos", "produtos", "clientes", "usuarios"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createClientesTable := `
	CREATE TABLE IF NOT EXISTS clientes (
		id CHAR(36) NOT NULL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		telefone VARCHAR(30) NOT NULL,
		endereco VARCHAR(255),
		nome_empresa VARCHAR(255),
		bairro VARCHAR(128),
		cidade VARCHAR(128),
		uf CHAR(2),
		cep VARCHAR(16),
		email VARCHAR(255),
		ativo TINYINT(1) NOT NULL DEFAULT 1
	)`

	createProdutosTable := `
	CREATE TABLE IF NOT EXISTS produtos (
		id CHAR(36) NOT NULL PRIMARY KEY,
		codigo VARCHAR(32) NOT NULL,
		nome VARCHAR(255) NOT NULL,
		descricao TEXT,
		preco DECIMAL(10,2) NOT NULL,
		custo DECIMAL(10,2),
		estoque INT NOT NULL DEFAULT 0,
		estoque_minimo INT NOT NULL DEFAULT 0,
		unidade_medida VARCHAR(8) NOT NULL DEFAULT 'un',
		categoria VARCHAR(128),
		ativo TINYINT(1) NOT NULL DEFAULT 1,
		data_cadastro DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_nome (nome)
	)`

	createPedidosTable := `
	CREATE TABLE IF NOT EXISTS pedidos (
		id CHAR(36) NOT NULL PRIMARY KEY,
		numero_pedido BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		cliente_id CHAR(36) NOT NULL,
		data_pedido DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(50) NOT NULL DEFAULT 'pendente',
		total DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		observacoes TEXT,
		UNIQUE KEY uq_numero_pedido (numero_pedido),
		FOREIGN KEY (cliente_id) REFERENCES clientes(id),
		INDEX idx_data (data_pedido)
	)`

	createItensPedidoTable := `
	CREATE TABLE IF NOT EXISTS itens_pedido (
		id CHAR(36) NOT NULL PRIMARY KEY,
		pedido_id CHAR(36) NOT NULL,
		produto_id CHAR(36) NOT NULL,
		quantidade INT NOT NULL DEFAULT 1,
		preco_unitario DECIMAL(10,2) NOT NULL,
		total DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (pedido_id) REFERENCES pedidos(id) ON DELETE CASCADE,
		FOREIGN KEY (produto_id) REFERENCES produtos(id),
		INDEX idx_pedido (pedido_id),
		INDEX idx_produto (produto_id)
	)`

	createUsuariosTable := `
	CREATE TABLE IF NOT EXISTS usuarios (
		id CHAR(36) NOT NULL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		hashed_password VARCHAR(100) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'User'
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"clientes", createClientesTable},
		{"produtos", createProdutosTable},
		{"pedidos", createPedidosTable},
		{"itens_pedido", createItensPedidoTable},
		{"usuarios", createUsuariosTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
