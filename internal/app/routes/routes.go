package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campushq/placement-portal/internal/app/controllers"
	"github.com/campushq/placement-portal/internal/app/models"
	"github.com/campushq/placement-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	companyController *controllers.CompanyController,
	placementController *controllers.PlacementController,
	applicationController *controllers.ApplicationController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	v1.POST("/students", studentController.Register)
	v1.POST("/companies", companyController.Register)
	v1.GET("/dashboard/stats", dashboardController.GetStats)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.GET("", authMiddleware.RoleRequired(string(models.RoleAdmin)), studentController.List)
			students.GET("/:id", studentController.GetByID)
			students.PUT("/:id", studentController.Update)
		}

		companies := authenticated.Group("/companies")
		{
			companies.GET("", companyController.List)
			companies.PUT("/:id/verify", authMiddleware.RoleRequired(string(models.RoleAdmin)), companyController.Verify)
		}

		placements := authenticated.Group("/placements")
		{
			placements.GET("", placementController.List)
			placements.GET("/:id", placementController.GetByID)
			placements.POST("",
				authMiddleware.RoleRequired(string(models.RoleCompany), string(models.RoleAdmin)),
				placementController.Create)
		}

		applications := authenticated.Group("/applications")
		{
			applications.GET("", applicationController.List)
			applications.POST("",
				authMiddleware.RoleRequired(string(models.RoleStudent), string(models.RoleAdmin)),
				applicationController.Submit)
		}
	}
}
