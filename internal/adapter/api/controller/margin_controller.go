package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	"github.com/thabi/crm-distribuidora/internal/margin"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// MarginController expõe a calculadora de margens e preços
type MarginController struct {
	logger logger.Logger
}

// NewMarginController cria uma nova instância de MarginController
func NewMarginController(logger logger.Logger) *MarginController {
	return &MarginController{logger: logger}
}

// Calculate calcula a margem de um preço de venda sobre o custo
// @Summary Calcular margem
// @Description Calcula a margem percentual e o lucro unitário
// @Tags margens
// @Accept json
// @Produce json
// @Param calculo body dto.MarginRequest true "Custo e preço de venda"
// @Success 200 {object} dto.MarginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /margens/calcular [post]
func (c *MarginController) Calculate(ctx *gin.Context) {
	var req dto.MarginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	custo, err := dto.ParseAmount(req.Cost)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "custo inválido", err.Error()))
		return
	}
	preco, err := dto.ParseAmount(req.SalePrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "preço inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMarginResponse(
		custo,
		preco,
		margin.MarginPercent(preco, custo),
		margin.UnitProfit(preco, custo)))
}

// PriceFromMargin calcula o preço de venda para uma margem desejada
// @Summary Preço por margem
// @Description Calcula o preço de venda que atinge a margem desejada
// @Tags margens
// @Accept json
// @Produce json
// @Param calculo body dto.PriceFromMarginRequest true "Custo e margem desejada"
// @Success 200 {object} dto.MarginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /margens/preco-margem [post]
func (c *MarginController) PriceFromMargin(ctx *gin.Context) {
	var req dto.PriceFromMarginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	custo, err := dto.ParseAmount(req.Cost)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "custo inválido", err.Error()))
		return
	}
	margem, err := dto.ParseAmount(req.MarginPercent)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "margem inválida", err.Error()))
		return
	}

	preco := margin.SalePriceFromMargin(custo, margem)
	ctx.JSON(http.StatusOK, dto.NewMarginResponse(
		custo,
		preco,
		margin.MarginPercent(preco, custo),
		margin.UnitProfit(preco, custo)))
}

// PriceFromMarkup calcula o preço de venda por multiplicador
// @Summary Preço por markup
// @Description Calcula o preço de venda multiplicando o custo
// @Tags margens
// @Accept json
// @Produce json
// @Param calculo body dto.PriceFromMarkupRequest true "Custo e multiplicador"
// @Success 200 {object} dto.MarginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /margens/preco-markup [post]
func (c *MarginController) PriceFromMarkup(ctx *gin.Context) {
	var req dto.PriceFromMarkupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	custo, err := dto.ParseAmount(req.Cost)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "custo inválido", err.Error()))
		return
	}
	markup, err := dto.ParseAmount(req.Markup)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "markup inválido", err.Error()))
		return
	}

	preco := margin.SalePriceFromMarkup(custo, markup)
	ctx.JSON(http.StatusOK, dto.NewMarginResponse(
		custo,
		preco,
		margin.MarginPercent(preco, custo),
		margin.UnitProfit(preco, custo)))
}

// Analyze faz a análise completa de viabilidade de um produto
// @Summary Análise de viabilidade
// @Description Calcula margem, lucros, ponto de equilíbrio e retorno
// @Tags margens
// @Accept json
// @Produce json
// @Param analise body dto.AnalysisRequest true "Dados da análise"
// @Success 200 {object} margin.Analysis
// @Failure 400 {object} dto.ErrorResponse
// @Router /margens/analise [post]
func (c *MarginController) Analyze(ctx *gin.Context) {
	var req dto.AnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	custo, err := dto.ParseAmount(req.Cost)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "custo inválido", err.Error()))
		return
	}
	preco, err := dto.ParseAmount(req.SalePrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "preço inválido", err.Error()))
		return
	}
	impostos, err := dto.ParseAmount(req.TaxPercent)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "impostos inválidos", err.Error()))
		return
	}
	custosFixos, err := dto.ParseAmount(req.FixedCosts)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "custos fixos inválidos", err.Error()))
		return
	}

	analise, err := margin.AnalyzeProduct(custo, preco, req.Quantity, impostos, custosFixos)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro na análise", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, analise)
}
