package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	clientes := r.Group("/clientes")
	{
		clientes.POST("", customerController.Create)
		clientes.GET("", customerController.List)
		clientes.GET("/busca", customerController.Search)
		clientes.GET("/:id", customerController.Get)
		clientes.PUT("/:id", customerController.Update)
		clientes.DELETE("/:id", customerController.Delete)
	}
}
