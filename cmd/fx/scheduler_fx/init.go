package scheduler_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"gatortrips/internal/repositories"
	"gatortrips/internal/services"
	mem "gatortrips/pkg/memcache"
)

var Module = fx.Provide(
	provideOptimizerConfig, provideRouteOptimizer, provideLegAnnotator, provideDayLocks, provideDayScheduler)

func provideOptimizerConfig() services.OptimizerConfig {
	cfg := services.DefaultOptimizerConfig()

	if v := os.Getenv("ROUTE_GATE_KM"); v != "" {
		km, err := strconv.ParseFloat(v, 64)
		if err != nil || km <= 0 {
			log.Printf("invalid ROUTE_GATE_KM %q, using %.0f", v, cfg.MaxLegDistanceKm)
		} else {
			cfg.MaxLegDistanceKm = km
		}
	}
	if v := os.Getenv("ROUTE_GATE_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid ROUTE_GATE_STRICT %q, using %v", v, cfg.StrictDistanceGate)
		} else {
			cfg.StrictDistanceGate = strict
		}
	}
	return cfg
}

func provideRouteOptimizer(provider services.RouteProvider, cfg services.OptimizerConfig) *services.RouteOptimizer {
	return services.NewRouteOptimizer(provider, cfg)
}

func provideLegAnnotator(provider services.RouteProvider) *services.LegAnnotator {
	return services.NewLegAnnotator(provider)
}

func provideDayLocks() mem.DayLockRegistry {
	return mem.NewDayLocks()
}

func provideDayScheduler(
	tripRepo repositories.TripRepository,
	optimizer *services.RouteOptimizer,
	annotator *services.LegAnnotator,
	locks mem.DayLockRegistry,
) services.DaySchedulerServiceInterface {
	return services.NewDayScheduler(tripRepo, optimizer, annotator, locks)
}
