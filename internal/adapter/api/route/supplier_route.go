package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterSupplierRoutes registra as rotas do módulo de fornecedores
func RegisterSupplierRoutes(r *gin.RouterGroup, supplierController *controller.SupplierController) {
	fornecedores := r.Group("/fornecedores")
	{
		fornecedores.POST("", supplierController.Create)
		fornecedores.GET("", supplierController.List)
		fornecedores.GET("/busca", supplierController.Search)
		fornecedores.GET("/:id", supplierController.Get)
		fornecedores.GET("/:id/produtos", supplierController.Products)
		fornecedores.PUT("/:id", supplierController.Update)
		fornecedores.DELETE("/:id", supplierController.Delete)
	}
}
