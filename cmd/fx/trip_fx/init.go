package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gatortrips/internal/repositories"
	"gatortrips/internal/services"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, lookup services.CollaboratorLookupInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo, lookup)
}
