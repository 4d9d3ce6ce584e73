package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elgarage/backend/pkg/apperr"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"message": "Véhicule ajouté !"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Véhicule ajouté !"}`, rec.Body.String())
}

func TestRawWritesExactBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"titre_rapport":"X","cle_inconnue":1}`
	Raw(rec, http.StatusOK, []byte(body))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, body, rec.Body.String())
}

func TestAppErrorMapsKinds(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperr.New(apperr.Validation, "Email déjà utilisé."), http.StatusBadRequest, "Email déjà utilisé."},
		{apperr.New(apperr.Unauthorized, "Identifiants incorrects."), http.StatusUnauthorized, "Identifiants incorrects."},
		{apperr.New(apperr.Forbidden, "Accès IA non autorisé."), http.StatusForbidden, "Accès IA non autorisé."},
		{apperr.New(apperr.NotFound, "Véhicule introuvable."), http.StatusNotFound, "Véhicule introuvable."},
		{apperr.New(apperr.Unavailable, "Service IA non disponible."), http.StatusServiceUnavailable, "Service IA non disponible."},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		AppError(rec, c.err)
		assert.Equal(t, c.status, rec.Code)
		assert.Contains(t, rec.Body.String(), c.message)
	}
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"email": "The email must be a valid email address."})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}
