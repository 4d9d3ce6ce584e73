package controllers

import (
	"net/http"

	"github.com/elgarage/backend/pkg/response"
)

// StatusController serves the liveness root route.
type StatusController struct{}

func NewStatusController() *StatusController {
	return &StatusController{}
}

// Index confirms the API is reachable.
func (c *StatusController) Index(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "ELGarage API is running 🚀",
	})
}
