package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	ai := services.NewAIService()

	wellnessCtrl := controllers.NewWellnessController(config.DB, hub)
	mealPlanCtrl := controllers.NewMealPlanController(config.DB, hub)
	journeyCtrl := controllers.NewJourneyController(config.DB, hub)
	calmCtrl := controllers.NewCalmController(config.DB, ai)
	dashboardCtrl := controllers.NewDashboardController(config.DB)
	assistantCtrl := controllers.NewAssistantController(config.DB, ai, hub)
	realtimeCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/account", controllers.DeleteAccount)
	}

	wellness := r.Group("/wellness")
	wellness.Use(middlewares.AuthMiddleware())
	{
		wellness.GET("/:weekId", wellnessCtrl.GetWeek)
		wellness.PUT("/:weekId/mood", wellnessCtrl.UpdateMood)
		wellness.PUT("/:weekId/energy", wellnessCtrl.UpdateEnergy)
		wellness.PUT("/:weekId/water", wellnessCtrl.SetWater)
		wellness.PUT("/:weekId/sleep/:weekday", wellnessCtrl.SetSleep)
		wellness.PUT("/:weekId/log/:weekday", wellnessCtrl.LogDay)
		wellness.PUT("/:weekId/dates", wellnessCtrl.SetPregnancyDates)
		wellness.PUT("/:weekId/tip", wellnessCtrl.SetDailyTip)
		wellness.POST("/:weekId/supplements/:weekday/toggle", wellnessCtrl.ToggleSupplement)
	}

	mealplan := r.Group("/mealplan")
	mealplan.Use(middlewares.AuthMiddleware())
	{
		mealplan.GET("/:weekId", mealPlanCtrl.GetWeek)
		mealplan.PUT("/:weekId/:slot/:weekday", mealPlanCtrl.SetMeal)
	}

	catalog := r.Group("/catalog")
	catalog.Use(middlewares.AuthMiddleware())
	{
		catalog.GET("/meals", mealPlanCtrl.MealOptions)
		catalog.POST("/meals", mealPlanCtrl.AddCustomMeal)
		catalog.DELETE("/meals/:name", mealPlanCtrl.DeleteCustomMeal)
		catalog.GET("/supplements", mealPlanCtrl.SupplementOptions)
		catalog.POST("/supplements", mealPlanCtrl.AddCustomSupplement)
		catalog.DELETE("/supplements/:name", mealPlanCtrl.DeleteCustomSupplement)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/:weekId/:weekday", dashboardCtrl.DayBreakdown)
	}

	journey := r.Group("/journey")
	journey.Use(middlewares.AuthMiddleware())
	{
		journey.GET("/todos", journeyCtrl.ListTodos)
		journey.POST("/todos", journeyCtrl.AddTodo)
		journey.POST("/todos/:id/toggle", journeyCtrl.ToggleTodo)
		journey.DELETE("/todos/:id", journeyCtrl.DeleteTodo)

		journey.GET("/wishes", journeyCtrl.ListWishes)
		journey.POST("/wishes", journeyCtrl.AddWish)
		journey.DELETE("/wishes/:id", journeyCtrl.DeleteWish)

		journey.GET("/reflections", journeyCtrl.ListReflections)
		journey.POST("/reflections", journeyCtrl.AddReflection)
		journey.DELETE("/reflections/:id", journeyCtrl.DeleteReflection)
	}

	calm := r.Group("/calm")
	calm.Use(middlewares.AuthMiddleware())
	{
		calm.GET("/exercises", calmCtrl.Exercises)
		calm.POST("/sessions", calmCtrl.LogSession)
		calm.GET("/sessions", calmCtrl.RecentSessions)
		calm.GET("/affirmations", calmCtrl.Affirmations)
	}

	assistant := r.Group("/assistant")
	assistant.Use(middlewares.AuthMiddleware())
	{
		assistant.GET("/tips", assistantCtrl.DailyTips)
		assistant.POST("/evaluate-meal", assistantCtrl.EvaluateMeal)
		assistant.POST("/evaluate-supplement", assistantCtrl.EvaluateSupplement)
		assistant.POST("/summarize/:weekId/:weekday", assistantCtrl.SummarizeDay)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", dashboardCtrl.Summary)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", realtimeCtrl.DocsWS)
	}

	return r
}
