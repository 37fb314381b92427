package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	produtos := r.Group("/produtos")
	{
		produtos.POST("", productController.Create)
		produtos.GET("", productController.List)
		produtos.GET("/busca", productController.Search)
		produtos.GET("/:id", productController.Get)
		produtos.PUT("/:id", productController.Update)
		produtos.DELETE("/:id", productController.Delete)
	}
}
