package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/api/middleware"
)

const OpenAPIPath = "/apidocs.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/").
			To(handler.Root).
			Doc("Welcome message").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(MessageResponse{}).
			Returns(200, "OK", MessageResponse{}))

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/search").
			To(handler.Search).
			Doc("Search images by text").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Reads(SearchRequestEnhanced{}).
			Writes(SearchResponse{}).
			Returns(200, "OK", SearchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/libs_manifest").
			To(handler.LibsManifest).
			Doc("Community resource pack manifest").
			Metadata(restfulspec.KeyOpenAPITags, []string{"community"}).
			Returns(200, "OK", nil).
			Returns(404, "Manifest Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/generate-cache").
			To(handler.GenerateCache).
			Doc("Build the engine cache in the background").
			Consumes("*/*").
			Metadata(restfulspec.KeyOpenAPITags, []string{"cache"}).
			Writes(MessageResponse{}).
			Returns(200, "OK", MessageResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/config").
			To(handler.GetConfig).
			Doc("Current engine settings").
			Metadata(restfulspec.KeyOpenAPITags, []string{"config"}).
			Writes(ConfigResponse{}).
			Returns(200, "OK", ConfigResponse{}))

	ws.
		Route(ws.PUT("/api-config").
			To(handler.UpdateConfig).
			Doc("Update engine api key and base url").
			Metadata(restfulspec.KeyOpenAPITags, []string{"config"}).
			Reads(ConfigUpdate{}).
			Writes(MessageResponse{}).
			Returns(200, "OK", MessageResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

// RegisterOpenAPI must run after every other web service is added.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "VVQuest API",
			Description: "Sticker and meme image search",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "search", Description: "Image search"}},
		{TagProps: spec.TagProps{Name: "community", Description: "Resource packs"}},
		{TagProps: spec.TagProps{Name: "cache", Description: "Engine cache"}},
		{TagProps: spec.TagProps{Name: "config", Description: "Engine settings"}},
	}
}
