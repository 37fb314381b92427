package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas, incluindo
// a importação por planilha
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController, importController *controller.ImportController) {
	vendas := r.Group("/vendas")
	{
		vendas.POST("", saleController.Create)
		vendas.GET("", saleController.List)
		vendas.GET("/proxima-nota", saleController.NextInvoice)
		vendas.POST("/importar", importController.Import)
		vendas.GET("/importar/modelo", importController.Template)
		vendas.GET("/:id", saleController.Get)
		vendas.PUT("/:id", saleController.Update)
		vendas.PATCH("/:id/status", saleController.UpdateStatus)
		vendas.DELETE("/:id", saleController.Delete)
	}
}
