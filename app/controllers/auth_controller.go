package controllers

import (
	"net/http"

	"github.com/elgarage/backend/app/services"
	"github.com/elgarage/backend/pkg/bind"
	"github.com/elgarage/backend/pkg/response"
	"github.com/elgarage/backend/pkg/validate"
)

// AuthController handles registration and login.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register creates a new account.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Corps de requête invalide.")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Register(r.Context(), in)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Inscription réussie",
		"user":    user,
	})
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and returns the account.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Corps de requête invalide.")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Connexion réussie",
		"user":    user,
	})
}
