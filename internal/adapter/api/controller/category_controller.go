package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	categorydomain "github.com/thabi/crm-distribuidora/internal/domain/category"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// CategoryController gerencia as categorias de despesas
type CategoryController struct {
	categoryRepo categorydomain.Repository
	logger       logger.Logger
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(categoryRepo categorydomain.Repository, logger logger.Logger) *CategoryController {
	return &CategoryController{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create cria uma nova categoria de despesa
// @Summary Criar categoria
// @Description Cria uma nova categoria de despesa
// @Tags categorias
// @Accept json
// @Produce json
// @Param categoria body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	categoria, err := categorydomain.NewCategory(req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar categoria", err.Error()))
		return
	}

	if err := c.categoryRepo.Create(ctx, categoria); err != nil {
		if errors.Is(err, categorydomain.ErrDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao salvar categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(categoria))
}

// List retorna todas as categorias
// @Summary Listar categorias
// @Description Lista as categorias de despesas
// @Tags categorias
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categorias [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categorias, err := c.categoryRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponseList(categorias))
}

// Update renomeia uma categoria
// @Summary Renomear categoria
// @Description Renomeia uma categoria existente
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path int true "ID da categoria"
// @Param categoria body dto.CategoryRequest true "Novo nome"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categorias/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	categoria, err := categorydomain.NewCategory(req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar categoria", err.Error()))
		return
	}
	categoria.ID = id

	if err := c.categoryRepo.Update(ctx, categoria); err != nil {
		switch {
		case errors.Is(err, categorydomain.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
		case errors.Is(err, categorydomain.ErrDuplicateName):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "categoria já existe", err.Error()))
		default:
			c.logger.Error("erro ao renomear categoria", "id", id, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao renomear categoria", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(categoria))
}

// Delete remove uma categoria
// @Summary Remover categoria
// @Description Remove uma categoria de despesa
// @Tags categorias
// @Produce json
// @Param id path int true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categorias/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, categorydomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "categoria não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover categoria", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("categoria removida com sucesso", nil))
}
