package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the services that need outside configuration. Logos and Push
// may be nil when AWS is not configured.
type Deps struct {
	DB       *gorm.DB
	Plans    controllers.Plans
	Logos    *services.LogoService
	Push     *services.PushService
	Realtime *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	authCtrl := controllers.NewAuthController(services.NewAuthService(d.DB))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	api.GET("/me", authCtrl.Me)

	controllers.NewCatalogController[models.Client, services.ClientInput](services.NewClientService(d.DB)).Mount(api.Group("/clients"))
	controllers.NewCatalogController[models.Meal, services.MealInput](services.NewMealService(d.DB)).Mount(api.Group("/meals"))
	controllers.NewCatalogController[models.Supplement, services.SupplementInput](services.NewSupplementService(d.DB)).Mount(api.Group("/supplements"))
	controllers.NewCatalogController[models.Exercise, services.ExerciseInput](services.NewExerciseService(d.DB)).Mount(api.Group("/exercises"))

	brandingCtrl := controllers.NewBrandingController(services.NewBrandingService(d.DB), d.Logos)
	branding := api.Group("/branding")
	{
		branding.GET("", brandingCtrl.Get)
		branding.PUT("", brandingCtrl.Update)
		branding.POST("/logo", brandingCtrl.UploadLogo)
	}

	planCtrl := controllers.NewPlanController(d.Plans)
	plans := api.Group("/plans")
	{
		plans.POST("/meal/preview", planCtrl.PreviewMeal)
		plans.POST("/training/preview", planCtrl.PreviewTraining)
		plans.POST("/meal", planCtrl.GenerateMeal)
		plans.POST("/training", planCtrl.GenerateTraining)
		plans.GET("", planCtrl.List)
		plans.GET("/:id/download", planCtrl.Download)
		plans.GET("/:id/view", planCtrl.View)
		plans.POST("/:id/email", planCtrl.Email)
		plans.DELETE("/:id", planCtrl.Delete)
	}

	deviceCtrl := controllers.NewDeviceController(d.Push)
	api.POST("/devices", deviceCtrl.Register)
	api.POST("/devices/notifications", deviceCtrl.ToggleNotifications)

	if d.Realtime != nil {
		api.GET("/ws/plans", controllers.NewRealtimeController(d.Realtime).PlansWS)
	}

	return r
}
