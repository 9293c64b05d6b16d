package setup

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/api"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/api/middleware"
	"github.com/rs/cors"
)

// publicPaths stay reachable in protected mode.
var publicPaths = []string{"/", "/health"}

// NewContainer registers the API routes behind the request gate. Filters run
// in registration order.
func NewContainer(deps *Dependencies) *restful.Container {
	container := restful.NewContainer()

	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)

	if deps.APIConfig.ProtectedMode {
		container.Filter(middleware.Protected(deps.APIConfig.ProtectedTokens, publicPaths...))
	}
	if deps.Limiter != nil {
		container.Filter(middleware.RateLimit(deps.Limiter, deps.Logger))
	}

	api.RegisterRoutes(container, deps.Handler)
	api.RegisterOpenAPI(container)

	return container
}

func NewHTTPHandler(deps *Dependencies) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return corsHandler.Handler(NewContainer(deps))
}
