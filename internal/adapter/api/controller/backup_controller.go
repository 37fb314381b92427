package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/dto"
	"github.com/thabi/crm-distribuidora/internal/backup"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// BackupController dispara backups sob demanda
type BackupController struct {
	service *backup.Service
	logger  logger.Logger
}

// NewBackupController cria uma nova instância de BackupController
func NewBackupController(service *backup.Service, logger logger.Logger) *BackupController {
	return &BackupController{service: service, logger: logger}
}

// Run executa um backup completo imediatamente
// @Summary Executar backup
// @Description Copia os arquivos de dados e gera a planilha de vendas
// @Tags backup
// @Produce json
// @Success 200 {object} backup.Info
// @Failure 500 {object} dto.ErrorResponse
// @Router /backup [post]
func (c *BackupController) Run(ctx *gin.Context) {
	info, err := c.service.Run(ctx)
	if err != nil {
		c.logger.Error("erro ao executar backup", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao executar backup", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, info)
}
