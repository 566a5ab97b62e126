package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gatortrips/cmd/fx/account_fx"
	"gatortrips/cmd/fx/db_fx"
	"gatortrips/cmd/fx/routing_fx"
	"gatortrips/cmd/fx/scheduler_fx"
	"gatortrips/cmd/fx/trip_fx"
	"gatortrips/internal/api/controllers"
	"gatortrips/internal/infra"
	"gatortrips/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		routing_fx.Module,
		scheduler_fx.Module,

		fx.Provide(controllers.NewAccountController),
		fx.Provide(controllers.NewTripController),
		fx.Provide(controllers.NewDayController),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	dayController *controllers.DayController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, tripController, dayController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	dayController *controllers.DayController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.GET("", tripController.ListTrips)
	trips.POST("", tripController.CreateTrip)
	trips.GET("/shared", tripController.ListSharedTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)
	trips.POST("/:tripId/leave", tripController.LeaveTrip)
	trips.POST("/:tripId/collaborators", tripController.InviteCollaborator)
	trips.PUT("/:tripId/travel-mode", tripController.UpdateTravelMode)

	days := r.Group("/days")
	days.Use(middleware.JWTAuthMiddleware())
	days.POST("/:dayId/events", dayController.AddEvent)
	days.PUT("/:dayId/events/:eventId", dayController.EditEvent)
	days.DELETE("/:dayId/events/:eventId", dayController.RemoveEvent)
	days.POST("/:dayId/optimize", dayController.OptimizeDay)
}
