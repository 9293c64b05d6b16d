package api

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/cachejob"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/community"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/engine"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/search"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

//go:generate mockgen -destination=mocks/mock_handler.go -package=mocks . Searcher,CacheTrigger,EngineSettings,CredentialStore

type Searcher interface {
	Search(ctx context.Context, req search.Request) ([]string, error)
}

type CacheTrigger interface {
	Trigger(ctx context.Context) (cachejob.Status, *cachejob.Job, error)
}

type EngineSettings interface {
	Snapshot() engine.Credentials
	Update(apiKey, baseURL *string) engine.Credentials
}

type CredentialStore interface {
	SaveCredentials(model, apiKey, baseURL string) error
}

type Handler struct {
	searcher     Searcher
	cache        CacheTrigger
	community    community.Community
	settings     EngineSettings
	store        CredentialStore
	manifestPath string
	logger       *zerolog.Logger
}

func NewHandler(
	searcher Searcher,
	cache CacheTrigger,
	comm community.Community,
	settings EngineSettings,
	store CredentialStore,
	manifestPath string,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		searcher:     searcher,
		cache:        cache,
		community:    comm,
		settings:     settings,
		store:        store,
		manifestPath: manifestPath,
		logger:       logger,
	}
}

// POST /search
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	request := newSearchRequest()
	if err := req.ReadEntity(&request); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}
	request.SetDefaults()

	if err := request.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	results, err := h.searcher.Search(req.Request.Context(), request.toSearch())
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) || errors.Is(err, search.ErrInvalidNResults) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Str("query", request.Query).Msg("Search failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, SearchResponse{Results: results})
}

// GET /
func (h *Handler) Root(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, MessageResponse{Message: "Welcome to the VVQuest API"})
}

// GET /libs_manifest
func (h *Handler) LibsManifest(req *restful.Request, resp *restful.Response) {
	if _, err := os.Stat(h.manifestPath); errors.Is(err, fs.ErrNotExist) {
		if err := h.community.ReloadCommunityInfo(req.Request.Context()); err != nil {
			h.logger.Error().Err(err).Msg("Failed to rebuild community manifest")
			middleware.HandleError(resp, err, http.StatusInternalServerError)
			return
		}
	}

	manifest, err := community.ReadManifest(h.manifestPath)
	switch {
	case errors.Is(err, community.ErrManifestNotFound):
		middleware.WriteError(resp, http.StatusNotFound, "Manifest file not found")
		return
	case errors.Is(err, community.ErrInvalidManifest):
		h.logger.Error().Err(err).Str("path", h.manifestPath).Msg("Corrupt community manifest")
		middleware.WriteError(resp, http.StatusInternalServerError, "Invalid JSON format in manifest file")
		return
	case err != nil:
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, manifest)
}

// POST /generate-cache
func (h *Handler) GenerateCache(req *restful.Request, resp *restful.Response) {
	status, job, err := h.cache.Trigger(req.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to trigger cache generation")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	event := h.logger.Info().Str("status", string(status))
	if job != nil {
		event = event.Str("job_id", job.ID)
	}
	event.Msg("Cache generation requested")

	resp.WriteHeaderAndEntity(http.StatusOK, MessageResponse{Message: string(status)})
}

// GET /config
func (h *Handler) GetConfig(req *restful.Request, resp *restful.Response) {
	creds := h.settings.Snapshot()
	resp.WriteHeaderAndEntity(http.StatusOK, ConfigResponse{
		Model:   creds.Model,
		APIKey:  creds.APIKey,
		BaseURL: creds.BaseURL,
	})
}

// PUT /api-config
func (h *Handler) UpdateConfig(req *restful.Request, resp *restful.Response) {
	var update ConfigUpdate
	if err := req.ReadEntity(&update); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	creds := h.settings.Update(update.APIKey, update.BaseURL)

	if err := h.store.SaveCredentials(creds.Model, creds.APIKey, creds.BaseURL); err != nil {
		h.logger.Error().Err(err).Msg("Failed to persist settings")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Bool("api_key_changed", update.APIKey != nil && *update.APIKey != "").
		Bool("base_url_changed", update.BaseURL != nil && *update.BaseURL != "").
		Msg("Engine config updated")

	resp.WriteHeaderAndEntity(http.StatusOK, MessageResponse{Message: "Config updated successfully"})
}

// GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}
