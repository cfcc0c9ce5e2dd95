package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/domain/patient"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/service"
	"github.com/dmehra2102/prod-golang-projects/opdflow/internal/validation"
	"github.com/dmehra2102/prod-golang-projects/opdflow/pkg/metrics"
)

type PatientHandler struct {
	svc     *service.PatientService
	consSvc *service.ConsultationService
	col     *metrics.Collector
}

func NewPatientHandler(svc *service.PatientService, consSvc *service.ConsultationService, col *metrics.Collector) *PatientHandler {
	return &PatientHandler{svc: svc, consSvc: consSvc, col: col}
}

// Raw strings throughout: the validation layer owns parsing, so the same
// payload works from an HTML form post or a JSON client.
type createPatientRequest struct {
	Name   string `form:"name" json:"name"`
	Gender string `form:"gender" json:"gender"`
	Age    string `form:"age" json:"age"`
	Phone  string `form:"phone" json:"phone"`
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req createPatientRequest
	if !bind(c, &req) {
		return
	}

	p, err := h.svc.RegisterPatient(c.Request.Context(), &patient.RegisterPatientCommand{
		Name:   req.Name,
		Gender: req.Gender,
		Age:    req.Age,
		Phone:  req.Phone,
	}, requestID(c), c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.col.PatientsRegisteredTotal.Inc()
	respondCreated(c, p, "Patient created successfully")
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetPatient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p, "")
}

func (h *PatientHandler) List(c *gin.Context) {
	q := &patient.ListPatientsQuery{Search: c.Query("search")}

	if raw := c.Query("status"); raw != "" {
		status := patient.Status(raw)
		if !status.IsValid() {
			respondServiceError(c, &validation.FieldError{Field: "status", Reason: "status must be Active or Inactive"})
			return
		}
		q.Status = &status
	}

	patients, err := h.svc.ListPatients(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, patients, "")
}

// Consultations lists a patient's completed consultations.
func (h *PatientHandler) Consultations(c *gin.Context) {
	id, ok := parseUUID(c, "id")
	if !ok {
		return
	}

	consultations, err := h.consSvc.ListCompletedForPatient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, consultations, "")
}
