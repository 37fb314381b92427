// Package importer processa planilhas de vendas (xlsx, xls e csv)
// vindas de outros sistemas, com reconhecimento flexível de colunas,
// prévia dos dados e gravação em lote.
package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/format"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// DefaultRecipient entra quando a planilha não identifica o cliente
const DefaultRecipient = "Cliente Importado"

// PreviewLimit limita a quantidade de linhas devolvidas na prévia
const PreviewLimit = 50

// columnAliases mapeia cada campo da venda para os vários cabeçalhos
// que as planilhas reais usam para ele
var columnAliases = map[string][]string{
	"numero_nota":      {"nfe", "numero_nota", "nota", "numero", "nf", "numero_nf"},
	"data_saida":       {"datasaida", "data_saida", "data", "data_venda", "dt_saida"},
	"destinatario":     {"destinatario", "dest", "cliente", "cliente_nome", "razao_social"},
	"numero_loja":      {"nume da loja", "numero_loja", "loja", "num_loja", "numero da loja"},
	"valor":            {"valor", "valor_total", "total", "vl_total"},
	"forma_pagamento":  {"pix ou boleto", "forma_pagamento", "pagamento", "pix", "boleto", "forma_pag", "tipo_pagamento"},
	"status_pagamento": {"pago", "status_pagamento", "status", "situacao"},
	"data_vencimento":  {"data_vencimento", "vencimento", "dt_vencimento"},
}

// Row é uma linha da planilha já normalizada para o formato de venda
type Row struct {
	InvoiceNumber string          `json:"numero_nota"`
	ExitDate      string          `json:"data_saida"`
	Recipient     string          `json:"destinatario"`
	CustomerName  string          `json:"cliente_nome,omitempty"`
	Amount        decimal.Decimal `json:"valor"`
	PaymentMethod string          `json:"forma_pagamento"`
	DueDate       string          `json:"data_vencimento"`
	Status        sale.Status     `json:"status_pagamento"`
	Bonus         bool            `json:"bonificacao"`
}

// Stats resume o processamento de uma planilha
type Stats struct {
	Total  int `json:"total"`
	Valid  int `json:"validos"`
	Errors int `json:"erros"`
}

// Result carrega as linhas normalizadas e as estatísticas
type Result struct {
	Rows  []Row `json:"dados"`
	Stats Stats `json:"estatisticas"`
}

// Preview devolve as primeiras linhas para exibição
func (r *Result) Preview() []Row {
	if len(r.Rows) > PreviewLimit {
		return r.Rows[:PreviewLimit]
	}
	return r.Rows
}

// Summary resume uma importação efetivada
type Summary struct {
	BatchID   string `json:"lote"`
	Imported  int    `json:"importados"`
	Processed int    `json:"total_processados"`
}

// Importer lê planilhas de vendas e grava os registros resolvendo
// clientes pelo nome
type Importer struct {
	sales     sale.Repository
	customers customer.Repository
	log       logger.Logger
}

// NewImporter cria um novo importador de vendas
func NewImporter(sales sale.Repository, customers customer.Repository, log logger.Logger) *Importer {
	return &Importer{sales: sales, customers: customers, log: log}
}

// Parse lê o arquivo e normaliza cada linha. Linhas totalmente vazias
// contam como erro; valores e datas ilegíveis recebem os padrões e a
// linha segue válida.
func (i *Importer) Parse(filename string, file io.Reader) (*Result, error) {
	tabela, err := readTable(filename, file)
	if err != nil {
		return nil, err
	}
	if len(tabela) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}

	colunas := matchColumns(tabela[0])
	if len(colunas) == 0 {
		return nil, fmt.Errorf("nenhuma coluna reconhecida encontrada no arquivo")
	}

	dados := tabela[1:]
	resultado := &Result{Stats: Stats{Total: len(dados)}}

	for idx, linha := range dados {
		if blankRow(linha) {
			resultado.Stats.Errors++
			continue
		}
		resultado.Rows = append(resultado.Rows, normalizeRow(linha, colunas, idx))
		resultado.Stats.Valid++
	}

	i.log.Info("planilha processada",
		"arquivo", filename,
		"total", resultado.Stats.Total,
		"validos", resultado.Stats.Valid,
		"erros", resultado.Stats.Errors)

	return resultado, nil
}

// Commit grava as linhas como vendas. Nomes de clientes são casados
// sem distinção de maiúsculas com o cadastro; com createCustomers os
// não encontrados viram clientes novos com número de loja AUTO-<n>.
func (i *Importer) Commit(ctx context.Context, rows []Row, createCustomers bool) (*Summary, error) {
	clientes, err := i.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	porNome := make(map[string]int, len(clientes))
	for _, c := range clientes {
		porNome[strings.ToLower(c.Name)] = c.ID
	}

	resumo := &Summary{
		BatchID:   uuid.New().String(),
		Processed: len(rows),
	}

	for _, linha := range rows {
		destinatario := linha.Recipient
		if linha.CustomerName != "" {
			nome := strings.ToLower(linha.CustomerName)
			id, achou := porNome[nome]
			if !achou && createCustomers {
				novo, err := customer.NewCustomer(
					linha.CustomerName,
					fmt.Sprintf("AUTO-%d", len(porNome)+1),
					"", "")
				if err == nil {
					novo.Notes = "Cliente criado automaticamente na importação"
					if err := i.customers.Create(ctx, novo); err == nil {
						porNome[nome] = novo.ID
						id, achou = novo.ID, true
					} else {
						i.log.Error("erro ao criar cliente na importação", "nome", linha.CustomerName, "error", err)
					}
				}
			}
			if achou {
				destinatario = sale.CustomerRef(id)
			}
		}

		venda, err := sale.NewSale(
			linha.InvoiceNumber,
			linha.ExitDate,
			destinatario,
			linha.Amount,
			linha.PaymentMethod,
			linha.DueDate,
			linha.Status,
			linha.Bonus)
		if err != nil {
			i.log.Error("erro ao montar venda importada", "nota", linha.InvoiceNumber, "error", err)
			continue
		}
		if err := i.sales.Create(ctx, venda); err != nil {
			i.log.Error("erro ao gravar venda importada", "nota", linha.InvoiceNumber, "error", err)
			continue
		}
		resumo.Imported++
	}

	i.log.Info("importação concluída",
		"lote", resumo.BatchID,
		"importados", resumo.Imported,
		"processados", resumo.Processed)

	return resumo, nil
}

// matchColumns encontra, para cada campo, o índice da primeira coluna
// do cabeçalho que bate com um dos apelidos aceitos
func matchColumns(header []string) map[string]int {
	normalizado := make([]string, len(header))
	for i, h := range header {
		normalizado[i] = strings.ToLower(strings.TrimSpace(h))
	}

	colunas := map[string]int{}
	for campo, opcoes := range columnAliases {
		for _, opcao := range opcoes {
			for idx, h := range normalizado {
				if h == opcao {
					colunas[campo] = idx
					break
				}
			}
			if _, ok := colunas[campo]; ok {
				break
			}
		}
	}
	return colunas
}

func blankRow(linha []string) bool {
	for _, cel := range linha {
		if strings.TrimSpace(cel) != "" {
			return false
		}
	}
	return true
}

func cell(linha []string, colunas map[string]int, campo string) (string, bool) {
	idx, ok := colunas[campo]
	if !ok || idx >= len(linha) {
		return "", false
	}
	return strings.TrimSpace(linha[idx]), true
}

// normalizeRow aplica os padrões de preenchimento campo a campo
func normalizeRow(linha []string, colunas map[string]int, idx int) Row {
	row := Row{
		ExitDate:      format.Today(),
		Recipient:     DefaultRecipient,
		PaymentMethod: "À vista",
		Status:        sale.StatusPending,
	}

	if v, ok := cell(linha, colunas, "numero_nota"); ok && v != "" {
		row.InvoiceNumber = v
	} else {
		row.InvoiceNumber = fmt.Sprintf("IMP-%d", idx+1)
	}

	if v, ok := cell(linha, colunas, "data_saida"); ok && v != "" {
		if d, err := format.ParseDate(v); err == nil {
			row.ExitDate = d.Format(format.DateBR)
		}
	}

	if v, ok := cell(linha, colunas, "destinatario"); ok && v != "" {
		row.Recipient = v
		row.CustomerName = v
	}

	if v, ok := cell(linha, colunas, "numero_loja"); ok && v != "" && row.Recipient != DefaultRecipient {
		row.Recipient = fmt.Sprintf("%s - Loja %s", row.Recipient, v)
		row.CustomerName = row.Recipient
	}

	if v, ok := cell(linha, colunas, "valor"); ok && v != "" {
		if valor, err := format.ParseCurrency(v); err == nil {
			row.Amount = valor
		}
	}

	if v, ok := cell(linha, colunas, "forma_pagamento"); ok && v != "" {
		row.PaymentMethod = v
	}

	// Sem vencimento na planilha, o vencimento acompanha a saída
	row.DueDate = row.ExitDate
	if v, ok := cell(linha, colunas, "data_vencimento"); ok && v != "" {
		if d, err := format.ParseDate(v); err == nil {
			row.DueDate = d.Format(format.DateBR)
		}
	}

	if v, ok := cell(linha, colunas, "status_pagamento"); ok && v != "" {
		row.Status = normalizeStatus(v)
	}

	return row
}

// normalizeStatus traduz os sinônimos comuns de status para o conjunto
// canônico; o que não for reconhecido fica pendente
func normalizeStatus(texto string) sale.Status {
	switch strings.ToLower(strings.TrimSpace(texto)) {
	case "pago", "quitado", "liquidado":
		return sale.StatusPaid
	case "pendente", "aberto", "em_aberto":
		return sale.StatusPending
	case "atrasado", "vencido":
		return sale.StatusOverdue
	case "cancelado", "cancelada":
		return sale.StatusCanceled
	default:
		return sale.StatusPending
	}
}
