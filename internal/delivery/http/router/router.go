// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nutriplan/config"
	"nutriplan/internal/delivery/http/router/handler"
	"nutriplan/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NutritionHandler *handler.NutritionHandler
	PlanHandler      *handler.PlanHandler
	GeminiHandler    *handler.GeminiHandler
	Metrics          *metrics.Metrics `optional:"true"`
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	nutritionHandler *handler.NutritionHandler
	planHandler      *handler.PlanHandler
	geminiHandler    *handler.GeminiHandler
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		nutritionHandler: params.NutritionHandler,
		planHandler:      params.PlanHandler,
		geminiHandler:    params.GeminiHandler,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")

	nutsGroup := api.Group("/nuts")
	{
		nutsGroup.GET("", r.nutritionHandler.ListNuts)
		nutsGroup.GET("/:id", r.nutritionHandler.GetNut)
		nutsGroup.GET("/:id/qrcode", r.nutritionHandler.NutQRCode)
	}
	api.GET("/presets", r.nutritionHandler.ListPresets)
	api.POST("/mix", r.nutritionHandler.CalculateMix)

	plansGroup := api.Group("/plans")
	{
		plansGroup.POST("/generate", r.planHandler.GeneratePlan)
		plansGroup.GET("/latest", r.planHandler.LatestPlan)
	}

	r.registerCompatRoutes(api)
	r.registerCompatRoutes(e.Group("/.netlify/functions"))
}

// registerCompatRoutes mounts the bare-JSON endpoints used by existing clients.
func (r *router) registerCompatRoutes(g *echo.Group) {
	g.Any("/plans", r.planHandler.Plans)
	g.Any("/gemini", r.geminiHandler.Gemini)
}
