package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterExpenseRoutes registra as rotas dos módulos de despesas e
// de categorias de despesas
func RegisterExpenseRoutes(r *gin.RouterGroup, expenseController *controller.ExpenseController, categoryController *controller.CategoryController) {
	despesas := r.Group("/despesas")
	{
		despesas.POST("", expenseController.Create)
		despesas.GET("", expenseController.List)
		despesas.GET("/:id", expenseController.Get)
		despesas.PUT("/:id", expenseController.Update)
		despesas.DELETE("/:id", expenseController.Delete)
	}

	categorias := r.Group("/categorias")
	{
		categorias.POST("", categoryController.Create)
		categorias.GET("", categoryController.List)
		categorias.PUT("/:id", categoryController.Update)
		categorias.DELETE("/:id", categoryController.Delete)
	}
}
