package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	"github.com/thabi/crm-distribuidora/internal/importer"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// ImportController gerencia a importação de vendas por planilha
type ImportController struct {
	importer *importer.Importer
	logger   logger.Logger
}

// NewImportController cria uma nova instância de ImportController
func NewImportController(imp *importer.Importer, logger logger.Logger) *ImportController {
	return &ImportController{importer: imp, logger: logger}
}

// Import recebe a planilha e executa a prévia ou a gravação
// @Summary Importar vendas
// @Description Processa uma planilha de vendas (xlsx, xls ou csv).
// @Description Com acao=visualizar devolve a prévia; com acao=importar
// @Description grava as vendas, criando clientes quando solicitado.
// @Tags importacao
// @Accept multipart/form-data
// @Produce json
// @Param arquivo formData file true "Planilha de vendas"
// @Param acao formData string false "visualizar (padrão) ou importar"
// @Param criar_clientes formData bool false "Criar clientes não cadastrados"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /vendas/importar [post]
func (c *ImportController) Import(ctx *gin.Context) {
	arquivo, err := ctx.FormFile("arquivo")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "nenhum arquivo enviado", err.Error()))
		return
	}

	conteudo, err := arquivo.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao abrir arquivo", err.Error()))
		return
	}
	defer conteudo.Close()

	resultado, err := c.importer.Parse(arquivo.Filename, conteudo)
	if err != nil {
		if err == importer.ErrUnsupportedFormat {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "formato de arquivo não suportado", arquivo.Filename))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao processar planilha", err.Error()))
		return
	}

	if ctx.PostForm("acao") != "importar" {
		ctx.JSON(http.StatusOK, gin.H{
			"dados":        resultado.Preview(),
			"estatisticas": resultado.Stats,
		})
		return
	}

	criarClientes := ctx.PostForm("criar_clientes") == "true"
	resumo, err := c.importer.Commit(ctx, resultado.Rows, criarClientes)
	if err != nil {
		c.logger.Error("erro ao efetivar importação", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao importar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, resumo)
}

// Template devolve a planilha modelo de importação
// @Summary Modelo de importação
// @Description Baixa uma planilha xlsx com o cabeçalho aceito
// @Tags importacao
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /vendas/importar/modelo [get]
func (c *ImportController) Template(ctx *gin.Context) {
	conteudo, err := importer.Template()
	if err != nil {
		c.logger.Error("erro ao gerar planilha modelo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar modelo", err.Error()))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="modelo_importacao_vendas.xlsx"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", conteudo)
}
