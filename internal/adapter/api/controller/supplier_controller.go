package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	productdomain "github.com/thabi/crm-distribuidora/internal/domain/product"
	supplierdomain "github.com/thabi/crm-distribuidora/internal/domain/supplier"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplierdomain.Repository
	productRepo  productdomain.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplierdomain.Repository, productRepo productdomain.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor no sistema
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param fornecedor body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fornecedores [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	fornecedor, err := supplierdomain.NewSupplier(req.Name, req.TaxID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Create(ctx, fornecedor); err != nil {
		if errors.Is(err, supplierdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao salvar fornecedor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(fornecedor))
}

// Get retorna um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Retorna os dados de um fornecedor pelo ID
// @Tags fornecedores
// @Produce json
// @Param id path int true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [get]
func (c *SupplierController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	fornecedor, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(fornecedor))
}

// List retorna todos os fornecedores
// @Summary Listar fornecedores
// @Description Lista os fornecedores cadastrados
// @Tags fornecedores
// @Produce json
// @Success 200 {array} dto.SupplierResponse
// @Router /fornecedores [get]
func (c *SupplierController) List(ctx *gin.Context) {
	fornecedores, err := c.supplierRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponseList(fornecedores))
}

// Search busca fornecedores por nome ou CNPJ
// @Summary Buscar fornecedores por termo
// @Description Busca textual no cadastro de fornecedores
// @Tags fornecedores
// @Produce json
// @Param q query string true "Termo de busca"
// @Success 200 {array} dto.SupplierResponse
// @Router /fornecedores/busca [get]
func (c *SupplierController) Search(ctx *gin.Context) {
	fornecedores, err := c.supplierRepo.Search(ctx, ctx.Query("q"))
	if err != nil {
		c.logger.Error("erro na busca de fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro na busca de fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponseList(fornecedores))
}

// Products lista os produtos fornecidos por um fornecedor
// @Summary Produtos do fornecedor
// @Description Lista os produtos vinculados ao fornecedor
// @Tags fornecedores
// @Produce json
// @Param id path int true "ID do fornecedor"
// @Success 200 {array} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fornecedores/{id}/produtos [get]
func (c *SupplierController) Products(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if _, err := c.supplierRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	produtos, err := c.productRepo.ListBySupplier(ctx, id)
	if err != nil {
		c.logger.Error("erro ao listar produtos do fornecedor", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(produtos))
}

// Update atualiza os dados de um fornecedor
// @Summary Atualizar fornecedor
// @Description Substitui os dados de um fornecedor existente
// @Tags fornecedores
// @Accept json
// @Produce json
// @Param id path int true "ID do fornecedor"
// @Param fornecedor body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	atual, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	fornecedor, err := supplierdomain.NewSupplier(req.Name, req.TaxID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar fornecedor", err.Error()))
		return
	}
	fornecedor.ID = id
	fornecedor.RegisteredAt = atual.RegisteredAt

	if err := c.supplierRepo.Update(ctx, fornecedor); err != nil {
		if errors.Is(err, supplierdomain.ErrDuplicateTaxID) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "CNPJ já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar fornecedor", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(fornecedor))
}

// Delete remove um fornecedor. Os produtos vinculados permanecem no
// cadastro apontando para o fornecedor removido.
// @Summary Remover fornecedor
// @Description Remove um fornecedor do sistema
// @Tags fornecedores
// @Produce json
// @Param id path int true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /fornecedores/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.supplierRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover fornecedor", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fornecedor removido com sucesso", nil))
}
