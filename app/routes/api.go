package routes

import (
	"gorm.io/gorm"

	"github.com/elgarage/backend/app/controllers"
	"github.com/elgarage/backend/app/repositories"
	"github.com/elgarage/backend/app/services"
	"github.com/elgarage/backend/pkg/metrics"
	"github.com/elgarage/backend/pkg/router"
)

// RegisterAPI wires repositories, services and controllers onto the router.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	vehicles := repositories.NewVehicleRepository(db)
	history := repositories.NewHistoryRepository(db)
	settings := repositories.NewSettingsRepository(db)

	authService := services.NewAuthService(users)
	vehicleService := services.NewVehicleService(vehicles, history)
	diagnosisService := services.NewDiagnosisService(users, vehicleService, history, settings)

	status := controllers.NewStatusController()
	auth := controllers.NewAuthController(authService)
	vehicle := controllers.NewVehicleController(vehicleService)
	diagnosis := controllers.NewDiagnosisController(diagnosisService)

	r.Get("/", "status.index", status.Index)
	r.Post("/register", "auth.register", auth.Register)
	r.Post("/login", "auth.login", auth.Login)
	r.Post("/vehicles", "vehicles.add", vehicle.Add)
	r.Get("/vehicles", "vehicles.list", vehicle.List)
	r.Post("/analyze", "diagnosis.analyze", diagnosis.Analyze)

	r.HandleFunc("/metrics", metrics.Handler())
}
