package v1

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/config"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/metrics"
)

type Router struct {
	Patients      *PatientHandler
	Appointments  *AppointmentHandler
	Consultations *ConsultationHandler
}

// NewEngine builds the gin engine with the full middleware chain and all
// versioned routes mounted.
func NewEngine(cfg *config.Config, log *zap.Logger, col *metrics.Collector, r *Router) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RequestLogger(log))
	engine.Use(Instrument(col))
	engine.Use(RateLimit(cfg.RateLimit))
	engine.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	}))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := engine.Group("/api/v1")
	{
		api.GET("/patients", r.Patients.List)
		api.POST("/patients", r.Patients.Create)
		api.GET("/patients/:id", r.Patients.Get)
		api.GET("/patients/:id/consultations", r.Patients.Consultations)

		api.GET("/appointments", r.Appointments.List)
		api.GET("/appointments/today", r.Appointments.Today)
		api.POST("/appointments", r.Appointments.Create)
		api.POST("/appointments/:id/consultation", r.Consultations.Create)

		api.GET("/consultations/:id", r.Consultations.Get)
		api.POST("/consultations/:id/complete", r.Consultations.Complete)
	}

	return engine
}
