package controller

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	"github.com/thabi/crm-distribuidora/internal/report"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// ReportController gerencia a geração e exportação de relatórios
type ReportController struct {
	generator *report.Generator
	logger    logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(generator *report.Generator, logger logger.Logger) *ReportController {
	return &ReportController{generator: generator, logger: logger}
}

// respond entrega o relatório como json ou como arquivo exportado,
// conforme o parâmetro formato. Relatório nil vira "sem dados".
func (c *ReportController) respond(ctx *gin.Context, rep report.Exportable, genErr error) {
	if genErr != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao gerar relatório", genErr.Error()))
		return
	}
	if rep == nil {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse("nenhum dado encontrado no período", nil))
		return
	}

	formato := ctx.Query("formato")
	if formato == "" {
		ctx.JSON(http.StatusOK, rep)
		return
	}

	caminho, err := c.generator.Export(rep, formato)
	if err != nil {
		if err == report.ErrUnknownFormat {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "formato inválido", formato))
			return
		}
		c.logger.Error("erro ao exportar relatório", "formato", formato, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar relatório", err.Error()))
		return
	}

	ctx.FileAttachment(caminho, filepath.Base(caminho))
}

// period lê as bordas do período da query string
func period(ctx *gin.Context) (string, string, bool) {
	inicio := ctx.Query("inicio")
	fim := ctx.Query("fim")
	if inicio == "" || fim == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período obrigatório", "informe inicio e fim no formato dd/mm/aaaa"))
		return "", "", false
	}
	return inicio, fim, true
}

// Sales gera o relatório de vendas
// @Summary Relatório de vendas
// @Description Vendas do período agrupadas por pagamento, status e cliente
// @Tags relatorios
// @Produce json
// @Param inicio query string true "Data inicial (dd/mm/aaaa)"
// @Param fim query string true "Data final (dd/mm/aaaa)"
// @Param formato query string false "Exportar como xlsx, csv ou json"
// @Success 200 {object} report.SalesReport
// @Failure 400 {object} dto.ErrorResponse
// @Router /relatorios/vendas [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	inicio, fim, ok := period(ctx)
	if !ok {
		return
	}
	rep, err := c.generator.Sales(ctx, inicio, fim)
	if rep == nil {
		c.respond(ctx, nil, err)
		return
	}
	c.respond(ctx, rep, err)
}

// Expenses gera o relatório de despesas
// @Summary Relatório de despesas
// @Description Despesas do período agrupadas por categoria, status e fornecedor
// @Tags relatorios
// @Produce json
// @Param inicio query string true "Data inicial (dd/mm/aaaa)"
// @Param fim query string true "Data final (dd/mm/aaaa)"
// @Param formato query string false "Exportar como xlsx, csv ou json"
// @Success 200 {object} report.ExpensesReport
// @Failure 400 {object} dto.ErrorResponse
// @Router /relatorios/despesas [get]
func (c *ReportController) Expenses(ctx *gin.Context) {
	inicio, fim, ok := period(ctx)
	if !ok {
		return
	}
	rep, err := c.generator.Expenses(ctx, inicio, fim)
	if rep == nil {
		c.respond(ctx, nil, err)
		return
	}
	c.respond(ctx, rep, err)
}

// Products gera o relatório de produtos e margens
// @Summary Relatório de produtos
// @Description Produtos ordenados por margem e contagem por fornecedor
// @Tags relatorios
// @Produce json
// @Param formato query string false "Exportar como xlsx, csv ou json"
// @Success 200 {object} report.ProductsReport
// @Router /relatorios/produtos [get]
func (c *ReportController) Products(ctx *gin.Context) {
	rep, err := c.generator.Products(ctx)
	if rep == nil {
		c.respond(ctx, nil, err)
		return
	}
	c.respond(ctx, rep, err)
}

// Customers gera o relatório de clientes
// @Summary Relatório de clientes
// @Description Compras por cliente e por grupo no período
// @Tags relatorios
// @Produce json
// @Param inicio query string true "Data inicial (dd/mm/aaaa)"
// @Param fim query string true "Data final (dd/mm/aaaa)"
// @Param formato query string false "Exportar como xlsx, csv ou json"
// @Success 200 {object} report.CustomersReport
// @Failure 400 {object} dto.ErrorResponse
// @Router /relatorios/clientes [get]
func (c *ReportController) Customers(ctx *gin.Context) {
	inicio, fim, ok := period(ctx)
	if !ok {
		return
	}
	rep, err := c.generator.Customers(ctx, inicio, fim)
	if rep == nil {
		c.respond(ctx, nil, err)
		return
	}
	c.respond(ctx, rep, err)
}

// Profit gera o relatório de lucro
// @Summary Relatório de lucro
// @Description Vendas menos despesas do período, sem os cancelados
// @Tags relatorios
// @Produce json
// @Param inicio query string true "Data inicial (dd/mm/aaaa)"
// @Param fim query string true "Data final (dd/mm/aaaa)"
// @Param formato query string false "Exportar como xlsx, csv ou json"
// @Success 200 {object} report.ProfitReport
// @Failure 400 {object} dto.ErrorResponse
// @Router /relatorios/lucro [get]
func (c *ReportController) Profit(ctx *gin.Context) {
	inicio, fim, ok := period(ctx)
	if !ok {
		return
	}
	rep, err := c.generator.Profit(ctx, inicio, fim)
	if rep == nil {
		c.respond(ctx, nil, err)
		return
	}
	c.respond(ctx, rep, err)
}

// Dashboard devolve o painel com os números do mês corrente
// @Summary Painel geral
// @Description Totais de cadastro, números do mês e pendências
// @Tags relatorios
// @Produce json
// @Success 200 {object} report.Dashboard
// @Router /dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	painel, err := c.generator.BuildDashboard(ctx)
	if err != nil {
		c.logger.Error("erro ao montar dashboard", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar dashboard", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, painel)
}
