package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterReportRoutes registra as rotas de relatórios e do painel
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	relatorios := r.Group("/relatorios")
	{
		relatorios.GET("/vendas", reportController.Sales)
		relatorios.GET("/despesas", reportController.Expenses)
		relatorios.GET("/produtos", reportController.Products)
		relatorios.GET("/clientes", reportController.Customers)
		relatorios.GET("/lucro", reportController.Profit)
	}

	r.GET("/dashboard", reportController.Dashboard)
}
