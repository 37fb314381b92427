package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// Collection gerencia uma coleção de registros persistida como um
// array JSON em um único arquivo. Toda mutação reescreve o arquivo
// inteiro; não há lock entre escritores concorrentes e a última
// escrita prevalece.
type Collection[T any] struct {
	path string
	log  logger.Logger
	id   func(T) int
}

// NewCollection cria uma coleção apontando para um arquivo JSON.
// idOf extrai o ID de um registro, usado para gerar o próximo ID.
func NewCollection[T any](path string, log logger.Logger, idOf func(T) int) *Collection[T] {
	return &Collection[T]{path: path, log: log, id: idOf}
}

// Path retorna o caminho do arquivo da coleção
func (c *Collection[T]) Path() string {
	return c.path
}

// Load lê a coleção inteira. Arquivo ausente resulta em coleção vazia;
// JSON malformado é registrado no log e também resulta em coleção
// vazia, nunca em erro para o chamador.
func (c *Collection[T]) Load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Error("erro ao ler arquivo de dados", "arquivo", c.path, "error", err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.Error("erro ao decodificar arquivo de dados", "arquivo", c.path, "error", err)
		return []T{}
	}
	return records
}

// Save reescreve a coleção inteira no arquivo, criando o diretório
// de dados se necessário
func (c *Collection[T]) Save(records []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de dados: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao codificar coleção: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("erro ao salvar %s: %w", c.path, err)
	}
	return nil
}

// NextID retorna o próximo ID da coleção: 1 + maior ID existente, ou 1
// quando vazia. O resultado sempre excede todos os IDs presentes.
func (c *Collection[T]) NextID(records []T) int {
	maior := 0
	for _, r := range records {
		if id := c.id(r); id > maior {
			maior = id
		}
	}
	return maior + 1
}
