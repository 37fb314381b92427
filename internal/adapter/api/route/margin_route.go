package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterMarginRoutes registra as rotas da calculadora de margens
func RegisterMarginRoutes(r *gin.RouterGroup, marginController *controller.MarginController) {
	margens := r.Group("/margens")
	{
		margens.POST("/calcular", marginController.Calculate)
		margens.POST("/preco-margem", marginController.PriceFromMargin)
		margens.POST("/preco-markup", marginController.PriceFromMarkup)
		margens.POST("/analise", marginController.Analyze)
	}
}
