package route

import (
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
)

// RegisterBackupRoutes registra a rota de backup sob demanda
func RegisterBackupRoutes(r *gin.RouterGroup, backupController *controller.BackupController) {
	r.POST("/backup", backupController.Run)
}
