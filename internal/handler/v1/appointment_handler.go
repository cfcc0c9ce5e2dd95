package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/appointment"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/service"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/metrics"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
	col *metrics.Collector
}

func NewAppointmentHandler(svc *service.AppointmentService, col *metrics.Collector) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, col: col}
}

type scheduleAppointmentRequest struct {
	PatientID   string `form:"patient_id" json:"patient_id"`
	DoctorName  string `form:"doctor_name" json:"doctor_name"`
	ScheduledAt string `form:"scheduled_at" json:"scheduled_at"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req scheduleAppointmentRequest
	if !bind(c, &req) {
		return
	}

	a, err := h.svc.ScheduleAppointment(c.Request.Context(), &appointment.ScheduleAppointmentCommand{
		PatientID:   req.PatientID,
		DoctorName:  req.DoctorName,
		ScheduledAt: req.ScheduledAt,
	}, requestID(c), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.col.AppointmentsTotal.WithLabelValues(string(a.Status)).Inc()
	respondCreated(c, a, "Appointment created successfully")
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	a, err := h.svc.GetAppointment(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, a, "")
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.svc.ListAppointments(c.Request.Context(), &appointment.ListAppointmentsQuery{})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, appointments, "")
}

// Today lists appointments whose date component is today, any status.
func (h *AppointmentHandler) Today(c *gin.Context) {
	appointments, err := h.svc.ListTodayAppointments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, appointments, "")
}
