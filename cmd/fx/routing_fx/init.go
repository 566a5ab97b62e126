package routing_fx

import (
	"go.uber.org/fx"

	"gatortrips/internal/services"
)

var Module = fx.Provide(provideRouteProvider)

func provideRouteProvider() services.RouteProvider {
	return services.NewGoogleRoutesClient(services.NewInMemoryLegCache())
}
