package controllers

import (
	"net/http"
	"strconv"

	"github.com/elgarage/backend/app/services"
	"github.com/elgarage/backend/pkg/bind"
	"github.com/elgarage/backend/pkg/response"
	"github.com/elgarage/backend/pkg/validate"
)

// VehicleController handles the garage routes.
type VehicleController struct {
	service *services.VehicleService
}

func NewVehicleController(service *services.VehicleService) *VehicleController {
	return &VehicleController{service: service}
}

// Add registers a vehicle for a user.
func (c *VehicleController) Add(w http.ResponseWriter, r *http.Request) {
	var in services.VehicleInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Corps de requête invalide.")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	vehicle, err := c.service.Add(r.Context(), in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Véhicule ajouté !",
		"vehicle": vehicle,
	})
}

// List returns the vehicles of the user named in the query string. The
// response body is the bare array, matching what the mobile client expects.
func (c *VehicleController) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 32)
	if err != nil || userID == 0 {
		response.Error(w, http.StatusBadRequest, "Paramètre user_id invalide.")
		return
	}

	vehicles, err := c.service.List(r.Context(), uint(userID))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, vehicles)
}
