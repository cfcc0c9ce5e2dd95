package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/config"
	v1 "github.com/dmehra2102/prod-golang-projects/opdflow/internal/handler/v1"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/repository/postgres"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/service"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/database"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/logger"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/metrics"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		zlog.Fatal("initializing tracer", zap.Error(err))
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		zlog.Fatal("connecting to database", zap.Error(err))
	}
	if err := database.Migrate(db, zlog); err != nil {
		zlog.Fatal("migrating database", zap.Error(err))
	}

	col := metrics.NewCollector("opdflow")
	if sqlDB, err := db.DB(); err == nil {
		col.DBConnections.Set(float64(sqlDB.Stats().OpenConnections))
	}

	patientRepo := postgres.NewPatientRepository(db)
	apptRepo := postgres.NewAppointmentRepository(db)
	consRepo := postgres.NewConsultationRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	auditSvc := service.NewAuditService(auditRepo, zlog)
	patientSvc := service.NewPatientService(patientRepo, auditSvc, zlog)
	apptSvc := service.NewAppointmentService(apptRepo, patientRepo, auditSvc, zlog)
	consSvc := service.NewConsultationService(consRepo, apptRepo, patientRepo, auditSvc, zlog)

	engine := v1.NewEngine(cfg, zlog, col, &v1.Router{
		Patients:      v1.NewPatientHandler(patientSvc, consSvc, col),
		Appointments:  v1.NewAppointmentHandler(apptSvc, col),
		Consultations: v1.NewConsultationHandler(consSvc, col),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	auditSvc.Shutdown()
	if err := tp.Shutdown(ctx); err != nil {
		zlog.Error("tracer shutdown", zap.Error(err))
	}

	zlog.Info("stopped")
}
