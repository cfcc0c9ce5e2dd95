package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/consultation"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/service"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/metrics"
)

type ConsultationHandler struct {
	svc *service.ConsultationService
	col *metrics.Collector
}

func NewConsultationHandler(svc *service.ConsultationService, col *metrics.Collector) *ConsultationHandler {
	return &ConsultationHandler{svc: svc, col: col}
}

type createConsultationRequest struct {
	Vitals1 string `form:"vitals_1" json:"vitals_1"`
	Vitals2 string `form:"vitals_2" json:"vitals_2"`
	Notes   string `form:"notes" json:"notes"`
}

// Create opens a Draft consultation for a scheduled appointment.
func (h *ConsultationHandler) Create(c *gin.Context) {
	appointmentID, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	var req createConsultationRequest
	if !bind(c, &req) {
		return
	}

	cons, err := h.svc.CreateConsultation(c.Request.Context(), &consultation.CreateConsultationCommand{
		AppointmentID: appointmentID,
		Vitals1:       req.Vitals1,
		Vitals2:       req.Vitals2,
		Notes:         req.Notes,
	}, requestID(c), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.col.ConsultationsCreated.Inc()
	respondCreated(c, cons, "Consultation created successfully")
}

// Complete finishes a Draft consultation and its appointment atomically.
func (h *ConsultationHandler) Complete(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	cons, err := h.svc.CompleteConsultation(c.Request.Context(), id, requestID(c), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.col.ConsultationsCompleted.Inc()
	respondOK(c, cons, "Consultation marked as completed")
}

func (h *ConsultationHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	cons, err := h.svc.GetConsultation(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, cons, "")
}
