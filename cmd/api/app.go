package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thabi/crm-distribuidora/internal/adapter/api/controller"
	"github.com/thabi/crm-distribuidora/internal/adapter/api/route"
	"github.com/thabi/crm-distribuidora/internal/adapter/repository"
	"github.com/thabi/crm-distribuidora/internal/backup"
	"github.com/thabi/crm-distribuidora/internal/config"
	"github.com/thabi/crm-distribuidora/internal/importer"
	"github.com/thabi/crm-distribuidora/internal/report"
	"github.com/thabi/crm-distribuidora/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	config    *config.Config
	router    *gin.Engine
	logger    logger.Logger
	scheduler *backup.Scheduler
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	cfg := config.NewConfigFromEnv()
	log := logger.NewLogger()

	// Criar repositórios
	customerRepo := repository.NewCustomerRepository(cfg.DataDir, log)
	supplierRepo := repository.NewSupplierRepository(cfg.DataDir, log)
	productRepo := repository.NewProductRepository(cfg.DataDir, log)
	saleRepo := repository.NewSaleRepository(cfg.DataDir, log)
	expenseRepo := repository.NewExpenseRepository(cfg.DataDir, log)
	categoryRepo := repository.NewCategoryRepository(cfg.DataDir, log)

	// Criar serviços
	generator := report.NewGenerator(saleRepo, expenseRepo, productRepo, customerRepo, supplierRepo, log, cfg.ReportsDir)
	imp := importer.NewImporter(saleRepo, customerRepo, log)
	backupService := backup.NewService(cfg.DataDir, cfg.BackupDir, saleRepo, log)
	scheduler := backup.NewScheduler(backupService, cfg.BackupInterval, log)

	// Criar controllers
	customerController := controller.NewCustomerController(customerRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, productRepo, log)
	productController := controller.NewProductController(productRepo, supplierRepo, log)
	saleController := controller.NewSaleController(saleRepo, customerRepo, log)
	expenseController := controller.NewExpenseController(expenseRepo, supplierRepo, log)
	categoryController := controller.NewCategoryController(categoryRepo, log)
	marginController := controller.NewMarginController(log)
	reportController := controller.NewReportController(generator, log)
	importController := controller.NewImportController(imp, log)
	backupController := controller.NewBackupController(backupService, log)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterCustomerRoutes(api, customerController)
	route.RegisterSupplierRoutes(api, supplierController)
	route.RegisterProductRoutes(api, productController)
	route.RegisterSaleRoutes(api, saleController, importController)
	route.RegisterExpenseRoutes(api, expenseController, categoryController)
	route.RegisterMarginRoutes(api, marginController)
	route.RegisterReportRoutes(api, reportController)
	route.RegisterBackupRoutes(api, backupController)

	return &App{
		config:    cfg,
		router:    router,
		logger:    log,
		scheduler: scheduler,
	}, nil
}

// Start sobe o servidor HTTP e o agendador de backups, com desligamento
// gracioso em SIGINT/SIGTERM
func (a *App) Start() error {
	a.scheduler.Start()

	srv := &http.Server{
		Addr:    ":" + a.config.Port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "porta", a.config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.scheduler.Stop()
		return err
	case <-quit:
		a.logger.Info("encerrando servidor")
	}

	a.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
