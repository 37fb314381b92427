// Package backup cuida das cópias de segurança: o espelho dos
// arquivos json de dados e o extrato das vendas em planilha.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

const timestampLayout = "20060102_150405"

// Service executa os backups. As rotinas só leem os dados; nenhuma
// falha de backup altera os arquivos originais.
type Service struct {
	dataDir   string
	backupDir string
	sales     sale.Repository
	log       logger.Logger
}

// NewService cria o serviço de backup
func NewService(dataDir, backupDir string, sales sale.Repository, log logger.Logger) *Service {
	return &Service{
		dataDir:   dataDir,
		backupDir: backupDir,
		sales:     sales,
		log:       log,
	}
}

// Info descreve o resultado de um backup completo
type Info struct {
	SnapshotDir string `json:"diretorio"`
	SalesFile   string `json:"planilha_vendas"`
	Timestamp   string `json:"timestamp"`
}

// Run executa o backup completo: espelho dos json e planilha de
// vendas, com o carimbo registrado no config.json
func (s *Service) Run(ctx context.Context) (*Info, error) {
	ts := time.Now().Format(timestampLayout)

	dir, err := s.snapshot(ts)
	if err != nil {
		return nil, err
	}

	planilha, err := s.exportSales(ctx, ts)
	if err != nil {
		// O espelho já foi gravado; a planilha é complementar
		s.log.Error("erro ao gerar planilha de vendas do backup", "error", err)
	}

	if err := s.recordLastBackup(ts); err != nil {
		s.log.Error("erro ao registrar data do backup", "error", err)
	}

	s.log.Info("backup concluído", "diretorio", dir, "planilha", planilha)
	return &Info{SnapshotDir: dir, SalesFile: planilha, Timestamp: ts}, nil
}

// snapshot copia os arquivos json do diretório de dados para
// backups/backup_<timestamp>. Subdiretórios ficam de fora, o que
// evita copiar backups para dentro de backups.
func (s *Service) snapshot(ts string) (string, error) {
	destino := filepath.Join(s.backupDir, "backup_"+ts)
	if err := os.MkdirAll(destino, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório de backup: %w", err)
	}

	entradas, err := os.ReadDir(s.dataDir)
	if err != nil {
		return "", fmt.Errorf("erro ao ler diretório de dados: %w", err)
	}

	for _, entrada := range entradas {
		if entrada.IsDir() || filepath.Ext(entrada.Name()) != ".json" {
			continue
		}
		origem := filepath.Join(s.dataDir, entrada.Name())
		if err := copyFile(origem, filepath.Join(destino, entrada.Name())); err != nil {
			return "", fmt.Errorf("erro ao copiar %s: %w", entrada.Name(), err)
		}
	}

	return destino, nil
}

// exportSales grava as vendas em vendas_backup_<ts>.xlsx e numa cópia
// de nome fixo vendas_atual.xlsx, usada para consulta rápida
func (s *Service) exportSales(ctx context.Context, ts string) (string, error) {
	vendas, err := s.sales.List(ctx)
	if err != nil {
		return "", err
	}
	if len(vendas) == 0 {
		s.log.Info("nenhuma venda para incluir no backup")
		return "", nil
	}

	f := excelize.NewFile()
	defer f.Close()

	const aba = "Vendas"
	f.SetSheetName("Sheet1", aba)

	header := []string{
		"id", "numero_nota", "data_saida", "destinatario", "valor",
		"forma_pagamento", "data_vencimento", "status_pagamento", "bonificacao",
	}
	for col, h := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(aba, cell, h); err != nil {
			return "", err
		}
	}
	for i, v := range vendas {
		valores := []interface{}{
			v.ID, v.InvoiceNumber, v.ExitDate, v.Recipient,
			v.Amount.InexactFloat64(), v.PaymentMethod, v.DueDate,
			string(v.Status), v.Bonus,
		}
		for col, valor := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(aba, cell, valor); err != nil {
				return "", err
			}
		}
	}

	arquivo := filepath.Join(s.backupDir, "vendas_backup_"+ts+".xlsx")
	if err := f.SaveAs(arquivo); err != nil {
		return "", fmt.Errorf("erro ao salvar planilha de backup: %w", err)
	}
	if err := f.SaveAs(filepath.Join(s.backupDir, "vendas_atual.xlsx")); err != nil {
		return "", fmt.Errorf("erro ao atualizar planilha corrente: %w", err)
	}

	return arquivo, nil
}

// recordLastBackup grava o carimbo do último backup no config.json do
// diretório de dados, preservando as demais chaves
func (s *Service) recordLastBackup(ts string) error {
	caminho := filepath.Join(s.dataDir, "config.json")

	config := map[string]interface{}{}
	if conteudo, err := os.ReadFile(caminho); err == nil {
		if err := json.Unmarshal(conteudo, &config); err != nil {
			config = map[string]interface{}{}
		}
	}
	config["last_backup"] = ts

	conteudo, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(caminho, conteudo, 0o644)
}

func copyFile(origem, destino string) error {
	in, err := os.Open(origem)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(destino)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
