package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	customerdomain "github.com/thabi/crm-distribuidora/internal/domain/customer"
	saledomain "github.com/thabi/crm-distribuidora/internal/domain/sale"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo     saledomain.Repository
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, customerRepo customerdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// customerNames monta o mapa id->nome usado nas respostas
func (c *SaleController) customerNames(ctx *gin.Context) map[int]string {
	clientes, err := c.customerRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar clientes para resposta", "error", err)
		return map[int]string{}
	}
	nomes := make(map[int]string, len(clientes))
	for _, cliente := range clientes {
		nomes[cliente.ID] = cliente.Name
	}
	return nomes
}

// Create registra uma nova venda
// @Summary Criar venda
// @Description Registra uma venda; sem número de nota, o próximo
// @Description sequencial de seis dígitos é atribuído
// @Tags vendas
// @Accept json
// @Produce json
// @Param venda body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /vendas [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	valor, err := req.ParsedAmount()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor inválido", err.Error()))
		return
	}

	if req.CustomerID != nil {
		if _, err := c.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, customerdomain.ErrNotFound) {
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "cliente não encontrado", ""))
				return
			}
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao validar cliente", err.Error()))
			return
		}
	}

	numeroNota := req.InvoiceNumber
	if numeroNota == "" {
		numeroNota, err = c.saleRepo.NextInvoiceNumber(ctx)
		if err != nil {
			c.logger.Error("erro ao gerar número de nota", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar número de nota", err.Error()))
			return
		}
	}

	venda, err := saledomain.NewSale(
		numeroNota,
		req.ExitDate,
		req.RecipientRef(),
		valor,
		req.PaymentMethod,
		req.DueDate,
		saledomain.Status(req.Status),
		req.Bonus)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar venda", err.Error()))
		return
	}

	if err := c.saleRepo.Create(ctx, venda); err != nil {
		c.logger.Error("erro ao salvar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(venda, c.customerNames(ctx)))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags vendas
// @Produce json
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	venda, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, saledomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(venda, c.customerNames(ctx)))
}

// List retorna as vendas em ordem decrescente de ID. Antes de listar,
// as pendentes vencidas são reclassificadas como atrasadas.
// @Summary Listar vendas
// @Description Lista as vendas, com filtros por cliente e bonificação
// @Tags vendas
// @Produce json
// @Param cliente query int false "Filtrar por cliente"
// @Param bonificacao query bool false "Somente bonificações"
// @Success 200 {array} dto.SaleResponse
// @Router /vendas [get]
func (c *SaleController) List(ctx *gin.Context) {
	if alteradas, err := c.saleRepo.RefreshOverdue(ctx); err != nil {
		c.logger.Error("erro ao atualizar vendas vencidas", "error", err)
	} else if alteradas > 0 {
		c.logger.Info("vendas reclassificadas como atrasadas", "quantidade", alteradas)
	}

	var (
		vendas []*saledomain.Sale
		err    error
	)
	switch {
	case ctx.Query("cliente") != "":
		clienteID, convErr := strconv.Atoi(ctx.Query("cliente"))
		if convErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "cliente inválido", convErr.Error()))
			return
		}
		vendas, err = c.saleRepo.ListByCustomer(ctx, clienteID)
	case ctx.Query("bonificacao") == "true":
		vendas, err = c.saleRepo.ListBonuses(ctx)
	default:
		vendas, err = c.saleRepo.List(ctx)
	}
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponseList(vendas, c.customerNames(ctx)))
}

// NextInvoice devolve o próximo número de nota sequencial
// @Summary Próximo número de nota
// @Description Retorna o próximo número sequencial de seis dígitos
// @Tags vendas
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /vendas/proxima-nota [get]
func (c *SaleController) NextInvoice(ctx *gin.Context) {
	numero, err := c.saleRepo.NextInvoiceNumber(ctx)
	if err != nil {
		c.logger.Error("erro ao calcular próximo número de nota", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular número de nota", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("próximo número de nota", gin.H{"numero_nota": numero}))
}

// Update atualiza os dados de uma venda
// @Summary Atualizar venda
// @Description Substitui os dados de uma venda existente
// @Tags vendas
// @Accept json
// @Produce json
// @Param id path int true "ID da venda"
// @Param venda body dto.SaleRequest true "Dados da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	valor, err := req.ParsedAmount()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor inválido", err.Error()))
		return
	}

	atual, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, saledomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	venda, err := saledomain.NewSale(
		req.InvoiceNumber,
		req.ExitDate,
		req.RecipientRef(),
		valor,
		req.PaymentMethod,
		req.DueDate,
		saledomain.Status(req.Status),
		req.Bonus)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar venda", err.Error()))
		return
	}
	venda.ID = id
	venda.CreatedAt = atual.CreatedAt

	if err := c.saleRepo.Update(ctx, venda); err != nil {
		c.logger.Error("erro ao atualizar venda", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(venda, c.customerNames(ctx)))
}

// UpdateStatus altera apenas o status de pagamento de uma venda
// @Summary Atualizar status da venda
// @Description Altera o status de pagamento (pendente, pago, atrasado, cancelado)
// @Tags vendas
// @Accept json
// @Produce json
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas/{id}/status [patch]
func (c *SaleController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req struct {
		Status string `json:"status_pagamento" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	status := saledomain.Status(req.Status)
	switch status {
	case saledomain.StatusPending, saledomain.StatusPaid, saledomain.StatusOverdue, saledomain.StatusCanceled:
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status inválido", req.Status))
		return
	}

	venda, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, saledomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	venda.Status = status
	if err := c.saleRepo.Update(ctx, venda); err != nil {
		c.logger.Error("erro ao atualizar status da venda", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(venda, c.customerNames(ctx)))
}

// Delete remove uma venda
// @Summary Remover venda
// @Description Remove uma venda do sistema
// @Tags vendas
// @Produce json
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /vendas/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.saleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, saledomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover venda", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda removida com sucesso", nil))
}
