package backup

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/thabi/crm-distribuidora/internal/adapter/repository"
	"github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

func TestRunEspelhaArquivosJSON(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	backupDir := filepath.Join(dataDir, "backups")
	log := logger.NewNopLogger()

	sales := repository.NewSaleRepository(dataDir, log)
	venda, err := sale.NewSale("000001", "15/03/2025", "Mercado A",
		decimal.NewFromInt(100), "Pix", "", "", false)
	require.NoError(t, err)
	require.NoError(t, sales.Create(ctx, venda))

	svc := NewService(dataDir, backupDir, sales, log)
	info, err := svc.Run(ctx)
	require.NoError(t, err)

	// O espelho contém o vendas.json e nada além de arquivos json
	copia := filepath.Join(info.SnapshotDir, "vendas.json")
	original, err := os.ReadFile(filepath.Join(dataDir, "vendas.json"))
	require.NoError(t, err)
	copiado, err := os.ReadFile(copia)
	require.NoError(t, err)
	assert.Equal(t, original, copiado)

	// A planilha de vendas sai em dois arquivos, um por carimbo e um
	// de nome fixo
	assert.Equal(t, filepath.Join(backupDir, "vendas_backup_"+info.Timestamp+".xlsx"), info.SalesFile)
	_, err = os.Stat(info.SalesFile)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(backupDir, "vendas_atual.xlsx"))
	require.NoError(t, err)

	f, err := excelize.OpenFile(info.SalesFile)
	require.NoError(t, err)
	defer f.Close()
	linhas, err := f.GetRows("Vendas")
	require.NoError(t, err)
	require.Len(t, linhas, 2)
	assert.Equal(t, "000001", linhas[1][1])
}

func TestRunRegistraUltimoBackup(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	log := logger.NewNopLogger()

	// config.json pré-existente deve ser preservado na mescla
	configPath := filepath.Join(dataDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"tema": "claro"}`), 0o644))

	svc := NewService(dataDir, filepath.Join(dataDir, "backups"),
		repository.NewSaleRepository(dataDir, log), log)
	info, err := svc.Run(ctx)
	require.NoError(t, err)

	dados, err := os.ReadFile(configPath)
	require.NoError(t, err)
	var config map[string]any
	require.NoError(t, json.Unmarshal(dados, &config))
	assert.Equal(t, info.Timestamp, config["last_backup"])
	assert.Equal(t, "claro", config["tema"])
}

func TestRunSemVendas(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	log := logger.NewNopLogger()

	svc := NewService(dataDir, filepath.Join(dataDir, "backups"),
		repository.NewSaleRepository(dataDir, log), log)
	info, err := svc.Run(ctx)
	require.NoError(t, err)

	// Sem vendas não há planilha, mas o espelho acontece normalmente
	assert.Empty(t, info.SalesFile)
	_, err = os.Stat(info.SnapshotDir)
	require.NoError(t, err)
}

func TestSnapshotNaoCopiaSubdiretorios(t *testing.T) {
	ctx := context.Background()
	dataDir := t.TempDir()
	backupDir := filepath.Join(dataDir, "backups")
	log := logger.NewNopLogger()

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "clientes.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "notas.txt"), []byte("rascunho"), 0o644))

	svc := NewService(dataDir, backupDir, repository.NewSaleRepository(dataDir, log), log)
	primeiro, err := svc.Run(ctx)
	require.NoError(t, err)

	entradas, err := os.ReadDir(primeiro.SnapshotDir)
	require.NoError(t, err)
	for _, entrada := range entradas {
		assert.Equal(t, ".json", filepath.Ext(entrada.Name()))
	}

	// Um segundo backup não pode arrastar o diretório de backups junto
	segundo, err := svc.Run(ctx)
	require.NoError(t, err)
	entradas, err = os.ReadDir(segundo.SnapshotDir)
	require.NoError(t, err)
	for _, entrada := range entradas {
		assert.False(t, entrada.IsDir())
	}
}
