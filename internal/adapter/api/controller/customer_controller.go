package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	customerdomain "github.com/thabi/crm-distribuidora/internal/domain/customer"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags clientes
// @Accept json
// @Produce json
// @Param cliente body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cliente, err := customerdomain.NewCustomer(req.Name, req.StoreNumber, req.Address, req.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}
	cliente.Email = req.Email
	cliente.TaxID = req.TaxID
	cliente.Group = req.Group
	cliente.Notes = req.Notes

	if err := c.customerRepo.Create(ctx, cliente); err != nil {
		if errors.Is(err, customerdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao salvar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cliente))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags clientes
// @Produce json
// @Param id path int true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	cliente, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar cliente", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cliente))
}

// List retorna todos os clientes, com filtro opcional por grupo
// @Summary Listar clientes
// @Description Lista os clientes cadastrados
// @Tags clientes
// @Produce json
// @Param grupo query string false "Filtrar por grupo (rede)"
// @Success 200 {array} dto.CustomerResponse
// @Router /clientes [get]
func (c *CustomerController) List(ctx *gin.Context) {
	var (
		clientes []*customerdomain.Customer
		err      error
	)
	if grupo := ctx.Query("grupo"); grupo != "" {
		clientes, err = c.customerRepo.ListByGroup(ctx, grupo)
	} else {
		clientes, err = c.customerRepo.List(ctx)
	}
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponseList(clientes))
}

// Search busca clientes por nome, loja, CNPJ ou grupo
// @Summary Buscar clientes por termo
// @Description Busca textual nos campos do cadastro de clientes
// @Tags clientes
// @Produce json
// @Param q query string true "Termo de busca"
// @Success 200 {array} dto.CustomerResponse
// @Router /clientes/busca [get]
func (c *CustomerController) Search(ctx *gin.Context) {
	clientes, err := c.customerRepo.Search(ctx, ctx.Query("q"))
	if err != nil {
		c.logger.Error("erro na busca de clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro na busca de clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponseList(clientes))
}

// Update atualiza os dados de um cliente
// @Summary Atualizar cliente
// @Description Substitui os dados de um cliente existente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path int true "ID do cliente"
// @Param cliente body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /clientes/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	atual, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	cliente, err := customerdomain.NewCustomer(req.Name, req.StoreNumber, req.Address, req.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar cliente", err.Error()))
		return
	}
	cliente.ID = id
	cliente.Email = req.Email
	cliente.TaxID = req.TaxID
	cliente.Group = req.Group
	cliente.Notes = req.Notes
	cliente.RegisteredAt = atual.RegisteredAt

	if err := c.customerRepo.Update(ctx, cliente); err != nil {
		if errors.Is(err, customerdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar cliente", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cliente))
}

// Delete remove um cliente
// @Summary Remover cliente
// @Description Remove um cliente do sistema
// @Tags clientes
// @Produce json
// @Param id path int true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover cliente", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente removido com sucesso", nil))
}
