package controllers

import (
	"net/http"

	"github.com/elgarage/backend/app/services"
	"github.com/elgarage/backend/pkg/bind"
	"github.com/elgarage/backend/pkg/response"
	"github.com/elgarage/backend/pkg/validate"
)

// DiagnosisController handles the AI diagnosis route.
type DiagnosisController struct {
	service *services.DiagnosisService
}

func NewDiagnosisController(service *services.DiagnosisService) *DiagnosisController {
	return &DiagnosisController{service: service}
}

// Analyze runs a diagnosis and returns the model's JSON object untouched,
// so the mobile client sees exactly what the model produced.
func (c *DiagnosisController) Analyze(w http.ResponseWriter, r *http.Request) {
	var in services.AnalyzeInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Corps de requête invalide.")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	report, err := c.service.Analyze(r.Context(), in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Raw(w, http.StatusOK, report.Raw)
}
