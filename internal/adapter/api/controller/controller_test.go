package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thabi/crm-distribuidora/internal/adapter/repository"
	"github.com/thabi/crm-distribuidora/internal/importer"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// newTestRouter monta um roteador com repositórios reais sobre um
// diretório temporário, do jeito que a aplicação monta o dela
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	log := logger.NewNopLogger()
	customers := repository.NewCustomerRepository(dir, log)
	sales := repository.NewSaleRepository(dir, log)

	r := gin.New()
	api := r.Group("/api/v1")

	customerController := NewCustomerController(customers, log)
	clientes := api.Group("/clientes")
	clientes.POST("", customerController.Create)
	clientes.GET("", customerController.List)
	clientes.GET("/busca", customerController.Search)
	clientes.GET("/:id", customerController.Get)
	clientes.DELETE("/:id", customerController.Delete)

	saleController := NewSaleController(sales, customers, log)
	importController := NewImportController(importer.NewImporter(sales, customers, log), log)
	vendas := api.Group("/vendas")
	vendas.POST("", saleController.Create)
	vendas.GET("", saleController.List)
	vendas.GET("/proxima-nota", saleController.NextInvoice)
	vendas.GET("/importar/modelo", importController.Template)
	vendas.GET("/:id", saleController.Get)
	vendas.PATCH("/:id/status", saleController.UpdateStatus)

	marginController := NewMarginController(log)
	margens := api.Group("/margens")
	margens.POST("/calcular", marginController.Calculate)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		dados, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(dados)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var corpo map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &corpo))
	return corpo
}

func TestCreateCustomerEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/clientes", gin.H{
		"nome":        "Mercado Central",
		"numero_loja": "12",
		"cnpj":        "11222333000181",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	corpo := decode(t, w)
	assert.Equal(t, float64(1), corpo["id"])
	assert.Equal(t, "Mercado Central", corpo["nome"])
	assert.Equal(t, "11.222.333/0001-81", corpo["cnpj_formatado"])
}

func TestCreateCustomerValidation(t *testing.T) {
	r := newTestRouter(t)

	// Sem número de loja a requisição não passa no binding
	w := doJSON(t, r, http.MethodPost, "/api/v1/clientes", gin.H{"nome": "Sem Loja"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCustomerCNPJDuplicado(t *testing.T) {
	r := newTestRouter(t)

	payload := gin.H{"nome": "Cliente A", "numero_loja": "1", "cnpj": "12.345.678/0001-90"}
	w := doJSON(t, r, http.MethodPost, "/api/v1/clientes", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	payload["nome"] = "Cliente B"
	payload["numero_loja"] = "2"
	payload["cnpj"] = "12345678000190"
	w = doJSON(t, r, http.MethodPost, "/api/v1/clientes", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetCustomerNaoEncontrado(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/clientes/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchCustomerEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/clientes", gin.H{"nome": "Padaria Estrela", "numero_loja": "7"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/clientes/busca?q=estrela", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resultado []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resultado))
	require.Len(t, resultado, 1)
	assert.Equal(t, "Padaria Estrela", resultado[0]["nome"])
}

func TestCreateSaleComCliente(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/clientes", gin.H{"nome": "Mercado Central", "numero_loja": "12"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/vendas", gin.H{
		"data_saida":      "15/03/2025",
		"cliente_id":      1,
		"valor":           "R$ 1.234,56",
		"forma_pagamento": "Boleto",
		"data_vencimento": "15/04/2125",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	corpo := decode(t, w)
	// Sem número de nota entra o próximo sequencial de seis dígitos
	assert.Equal(t, "000001", corpo["numero_nota"])
	assert.Equal(t, float64(1), corpo["cliente_id"])
	assert.Equal(t, "Mercado Central", corpo["cliente_nome"])
	assert.Equal(t, "R$ 1.234,56", corpo["valor_formatado"])
	assert.Equal(t, "pendente", corpo["status_pagamento"])
}

func TestCreateSaleClienteInexistente(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/vendas", gin.H{
		"data_saida":      "15/03/2025",
		"cliente_id":      42,
		"valor":           "100,00",
		"forma_pagamento": "Pix",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNextInvoiceEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/vendas/proxima-nota", nil)
	require.Equal(t, http.StatusOK, w.Code)

	corpo := decode(t, w)
	dados, ok := corpo["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "000001", dados["numero_nota"])
}

func TestUpdateSaleStatus(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/vendas", gin.H{
		"data_saida":      "15/03/2025",
		"destinatario":    "Mercado A",
		"valor":           "100,00",
		"forma_pagamento": "Boleto",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decode(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/vendas/%d/status", id), gin.H{"status_pagamento": "pago"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pago", decode(t, w)["status_pagamento"])

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/vendas/%d/status", id), gin.H{"status_pagamento": "quitado"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportTemplateDownload(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/vendas/importar/modelo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "modelo_importacao_vendas.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestMarginCalculateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/margens/calcular", gin.H{
		"custo":       "100,00",
		"preco_venda": "150,00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	corpo := decode(t, w)
	assert.Equal(t, "33.33", corpo["margem"])
	assert.Equal(t, "R$ 150,00", corpo["preco_formatado"])
}
