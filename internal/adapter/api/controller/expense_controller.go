package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	expensedomain "github.com/thabi/crm-distribuidora/internal/domain/expense"
	supplierdomain "github.com/thabi/crm-distribuidora/internal/domain/supplier"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// ExpenseController gerencia as requisições relacionadas a despesas
type ExpenseController struct {
	expenseRepo  expensedomain.Repository
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseRepo expensedomain.Repository, supplierRepo supplierdomain.Repository, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo:  expenseRepo,
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

func (c *ExpenseController) supplierNames(ctx *gin.Context) map[int]string {
	fornecedores, err := c.supplierRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar fornecedores para resposta", "error", err)
		return map[int]string{}
	}
	nomes := make(map[int]string, len(fornecedores))
	for _, f := range fornecedores {
		nomes[f.ID] = f.Name
	}
	return nomes
}

// Create registra uma nova despesa
// @Summary Criar despesa
// @Description Registra uma despesa, com vínculo opcional a fornecedor
// @Tags despesas
// @Accept json
// @Produce json
// @Param despesa body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /despesas [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	valor, err := req.ParsedAmount()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor inválido", err.Error()))
		return
	}

	if req.SupplierID != nil {
		if _, err := c.supplierRepo.FindByID(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, supplierdomain.ErrNotFound) {
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fornecedor não encontrado", ""))
				return
			}
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao validar fornecedor", err.Error()))
			return
		}
	}

	despesa, err := expensedomain.NewExpense(
		req.Description,
		valor,
		req.Date,
		req.Category,
		req.SupplierID,
		req.InvoiceNumber,
		req.DueDate,
		expensedomain.Status(req.Status))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar despesa", err.Error()))
		return
	}

	if err := c.expenseRepo.Create(ctx, despesa); err != nil {
		c.logger.Error("erro ao salvar despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(despesa, c.supplierNames(ctx)))
}

// Get retorna uma despesa pelo ID
// @Summary Buscar despesa
// @Description Retorna os dados de uma despesa pelo ID
// @Tags despesas
// @Produce json
// @Param id path int true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /despesas/{id} [get]
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	despesa, err := c.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, expensedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar despesa", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(despesa, c.supplierNames(ctx)))
}

// List retorna as despesas, com filtros por categoria e fornecedor.
// Antes de listar, as pendentes vencidas viram atrasadas.
// @Summary Listar despesas
// @Description Lista as despesas registradas
// @Tags despesas
// @Produce json
// @Param categoria query string false "Filtrar por categoria"
// @Param fornecedor query int false "Filtrar por fornecedor"
// @Success 200 {array} dto.ExpenseResponse
// @Router /despesas [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	if alteradas, err := c.expenseRepo.RefreshOverdue(ctx); err != nil {
		c.logger.Error("erro ao atualizar despesas vencidas", "error", err)
	} else if alteradas > 0 {
		c.logger.Info("despesas reclassificadas como atrasadas", "quantidade", alteradas)
	}

	var (
		despesas []*expensedomain.Expense
		err      error
	)
	switch {
	case ctx.Query("categoria") != "":
		despesas, err = c.expenseRepo.ListByCategory(ctx, ctx.Query("categoria"))
	case ctx.Query("fornecedor") != "":
		supplierID, convErr := strconv.Atoi(ctx.Query("fornecedor"))
		if convErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fornecedor inválido", convErr.Error()))
			return
		}
		despesas, err = c.expenseRepo.ListBySupplier(ctx, supplierID)
	default:
		despesas, err = c.expenseRepo.List(ctx)
	}
	if err != nil {
		c.logger.Error("erro ao listar despesas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponseList(despesas, c.supplierNames(ctx)))
}

// Update atualiza os dados de uma despesa
// @Summary Atualizar despesa
// @Description Substitui os dados de uma despesa existente
// @Tags despesas
// @Accept json
// @Produce json
// @Param id path int true "ID da despesa"
// @Param despesa body dto.ExpenseRequest true "Dados da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /despesas/{id} [put]
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	valor, err := req.ParsedAmount()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valor inválido", err.Error()))
		return
	}

	atual, err := c.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, expensedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar despesa", err.Error()))
		return
	}

	despesa, err := expensedomain.NewExpense(
		req.Description,
		valor,
		req.Date,
		req.Category,
		req.SupplierID,
		req.InvoiceNumber,
		req.DueDate,
		expensedomain.Status(req.Status))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar despesa", err.Error()))
		return
	}
	despesa.ID = id
	despesa.CreatedAt = atual.CreatedAt

	if err := c.expenseRepo.Update(ctx, despesa); err != nil {
		c.logger.Error("erro ao atualizar despesa", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(despesa, c.supplierNames(ctx)))
}

// Delete remove uma despesa
// @Summary Remover despesa
// @Description Remove uma despesa do sistema
// @Tags despesas
// @Produce json
// @Param id path int true "ID da despesa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /despesas/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.expenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, expensedomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover despesa", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("despesa removida com sucesso", nil))
}
