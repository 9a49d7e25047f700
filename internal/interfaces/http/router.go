package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/aquarium"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/auth"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/extraction"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/reception"
	"github.com/aquafarm-pro/aquafarm-api/internal/application/shipment"
	"github.com/aquafarm-pro/aquafarm-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	AquariumUC     *aquarium.UseCase
	ExtractionUC   *extraction.UseCase
	ShipmentImport *shipment.ImportUseCase
	ShipmentQuery  *shipment.QueryUseCase
	ReceptionUC    *reception.UseCase
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Aquariums
	aquariums := protected.Group("/aquariums")
	aquariumHandler := NewAquariumHandler(deps.AquariumUC)
	aquariums.Post("/", aquariumHandler.Create)
	aquariums.Get("/", aquariumHandler.List)
	aquariums.Get("/:id", aquariumHandler.GetByID)
	aquariums.Put("/:id", aquariumHandler.Update)
	aquariums.Delete("/:id", RequireRole(entity.RoleOwner, entity.RoleManager), aquariumHandler.Delete)

	// Farm settings (vocabulary edits are owner/manager only)
	settings := protected.Group("/settings")
	settings.Get("/", aquariumHandler.GetSettings)
	settings.Put("/", RequireRole(entity.RoleOwner, entity.RoleManager), aquariumHandler.SaveSettings)

	// Document extraction
	extract := protected.Group("/extract")
	extractionHandler := NewExtractionHandler(deps.ExtractionUC)
	extract.Post("/text", extractionHandler.ExtractText)
	extract.Post("/file", extractionHandler.ExtractFile)

	// Shipments
	shipments := protected.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentImport, deps.ShipmentQuery)
	shipments.Post("/import", shipmentHandler.Import)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Get("/:id/instances", shipmentHandler.Instances)

	// Reception plans
	receptionHandler := NewReceptionHandler(deps.ReceptionUC)
	plans := protected.Group("/reception/plans")
	plans.Post("/", receptionHandler.CreatePlan)
	plans.Get("/", receptionHandler.ListPlans)
	plans.Get("/:id", receptionHandler.GetPlan)
	plans.Post("/:id/transition", receptionHandler.Transition)
	plans.Get("/:id/items", receptionHandler.ListItems)
	plans.Post("/:id/items", receptionHandler.AddItem)
	plans.Post("/:id/items/attach", receptionHandler.AttachCandidates)
	plans.Get("/:id/work-requirements", receptionHandler.WorkRequirements)
	plans.Get("/:id/worksheet", receptionHandler.Worksheet)

	items := protected.Group("/reception/items")
	items.Patch("/:id/aquarium", receptionHandler.AssignAquarium)
	items.Post("/:id/receive", receptionHandler.ReceiveItem)
	items.Post("/:id/cancel", receptionHandler.CancelItem)
}
