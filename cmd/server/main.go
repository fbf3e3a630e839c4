package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"tailor-backend/internal/cache"
	"tailor-backend/internal/config"
	"tailor-backend/internal/database"
	"tailor-backend/internal/db"
	"tailor-backend/internal/handlers"
	"tailor-backend/internal/health"
	h "tailor-backend/internal/http"
	"tailor-backend/internal/middleware"
	"tailor-backend/internal/monitoring"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/services"
	"tailor-backend/internal/stores"
	"tailor-backend/internal/whatsapp"
	"tailor-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "override HTTP port")
	skipMigrations := flag.Bool("skip-migrations", false, "skip running database migrations at startup")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if !*skipMigrations {
		migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
		if err := migrator.RunMigrations(context.Background()); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	cacheClient := cache.New()
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	// Repositories
	measurementRepo := repositories.NewMeasurementRepository(pool)
	billRepo := repositories.NewBillRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	workerRepo := repositories.NewWorkerRepository(pool)
	workerExpenseRepo := repositories.NewWorkerExpenseRepository(pool)
	dailyExpenseRepo := repositories.NewDailyExpenseRepository(pool)

	// Stores (transaction-scoped and reporting ports)
	billingStore := stores.NewBillingStore(pool)
	expenseStore := stores.NewExpenseStore(pool)
	reportingStore := stores.NewReportingStore(pool)

	// Services
	billingService := services.NewBillingService(billingStore)
	orderService := services.NewOrderService(orderRepo, workerRepo)
	workerService := services.NewWorkerService(workerRepo)
	customerService := services.NewCustomerService(measurementRepo, billRepo, orderService, cacheClient)
	expenseService := services.NewExpenseService(expenseStore, workerRepo, workerExpenseRepo, dailyExpenseRepo)
	payrollService := services.NewPayrollService(reportingStore)
	profitService := services.NewProfitService(reportingStore)

	sender := whatsapp.NewProvider(cfg)
	notificationService := services.NewNotificationService(orderRepo, billRepo, sender, cfg.WhatsApp.Template)

	// Handlers
	billHandler := handlers.NewBillHandler(billingService, customerService, billRepo)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	workerHandler := handlers.NewWorkerHandler(workerService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	reportHandler := handlers.NewReportHandler(payrollService, profitService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	router := h.NewRouter(
		billHandler,
		customerHandler,
		orderHandler,
		workerHandler,
		expenseHandler,
		reportHandler,
		notificationHandler,
		healthHandler,
	)

	// Monitoring dashboard on its own port
	go monitoring.NewMonitoringServer(pool, cfg.Server.MonitoringPort).Start()

	handler := middleware.PanicRecovery(middleware.NewCORS(cfg)(router))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
