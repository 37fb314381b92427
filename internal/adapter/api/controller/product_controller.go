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

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo  productdomain.Repository
	supplierRepo supplierdomain.Repository
	logger       logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, supplierRepo supplierdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto vinculado a um fornecedor
// @Tags produtos
// @Accept json
// @Produce json
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /produtos [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	compra, venda, err := req.Prices()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valores inválidos", err.Error()))
		return
	}

	if _, err := c.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, supplierdomain.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao validar fornecedor", err.Error()))
		return
	}

	produto, err := productdomain.NewProduct(req.Name, compra, venda, req.SupplierID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	if err := c.productRepo.Create(ctx, produto); err != nil {
		c.logger.Error("erro ao salvar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(produto))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags produtos
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	produto, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(produto))
}

// List retorna todos os produtos, com filtro opcional por fornecedor
// @Summary Listar produtos
// @Description Lista os produtos cadastrados, com a margem calculada
// @Tags produtos
// @Produce json
// @Param fornecedor query int false "Filtrar por fornecedor"
// @Success 200 {array} dto.ProductResponse
// @Router /produtos [get]
func (c *ProductController) List(ctx *gin.Context) {
	var (
		produtos []*productdomain.Product
		err      error
	)
	if raw := ctx.Query("fornecedor"); raw != "" {
		supplierID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fornecedor inválido", convErr.Error()))
			return
		}
		produtos, err = c.productRepo.ListBySupplier(ctx, supplierID)
	} else {
		produtos, err = c.productRepo.List(ctx)
	}
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(produtos))
}

// Search busca produtos por nome
// @Summary Buscar produtos por termo
// @Description Busca textual no cadastro de produtos
// @Tags produtos
// @Produce json
// @Param q query string true "Termo de busca"
// @Success 200 {array} dto.ProductResponse
// @Router /produtos/busca [get]
func (c *ProductController) Search(ctx *gin.Context) {
	produtos, err := c.productRepo.Search(ctx, ctx.Query("q"))
	if err != nil {
		c.logger.Error("erro na busca de produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro na busca de produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponseList(produtos))
}

// Update atualiza os dados de um produto
// @Summary Atualizar produto
// @Description Substitui os dados de um produto existente
// @Tags produtos
// @Accept json
// @Produce json
// @Param id path int true "ID do produto"
// @Param produto body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	compra, venda, err := req.Prices()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "valores inválidos", err.Error()))
		return
	}

	atual, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	produto, err := productdomain.NewProduct(req.Name, compra, venda, req.SupplierID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar produto", err.Error()))
		return
	}
	produto.ID = id
	produto.RegisteredAt = atual.RegisteredAt

	if err := c.productRepo.Update(ctx, produto); err != nil {
		c.logger.Error("erro ao atualizar produto", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(produto))
}

// Delete remove um produto
// @Summary Remover produto
// @Description Remove um produto do sistema
// @Tags produtos
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover produto", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido com sucesso", nil))
}
