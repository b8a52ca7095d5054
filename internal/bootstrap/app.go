package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/extract"
	"syllabus-analyzer/internal/llm"
	"syllabus-analyzer/internal/llm/gemini"
	"syllabus-analyzer/internal/llm/openai"
	"syllabus-analyzer/internal/report"
	"syllabus-analyzer/internal/services/health"
	"syllabus-analyzer/internal/shared/config"
	"syllabus-analyzer/internal/shared/server"
	"syllabus-analyzer/internal/web"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Provider
	Current         *analyses.CurrentStore
	AnalysesService *analyses.Service
	HealthService   *health.Service
	AnalysisHandler *analyses.Handler
	ReportHandler   *report.Handler
	ExtractHandler  *extract.Handler
	WebHandler      *web.Handler
}

// Build prepares dependencies and the router. A missing API key is not an
// error: the app starts with AI features disabled.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	app, err := BuildService(cfg)
	if err != nil {
		return nil, err
	}

	app.HealthService = health.NewService(app.AnalysesService, cfg.LLMProvider)
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, app.Current)
	app.ReportHandler = report.NewHandler(app.Current)
	app.ExtractHandler = extract.NewHandler()
	app.WebHandler = web.NewHandler(app.AnalysesService)
	if app.AnalysisHandler == nil || app.WebHandler == nil {
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Health:          app.HealthService,
		AnalysisHandler: app.AnalysisHandler,
		ReportHandler:   app.ReportHandler,
		ExtractHandler:  app.ExtractHandler,
		WebHandler:      app.WebHandler,
	})
	return app, nil
}

// BuildService wires the provider and analysis service without HTTP routes.
// The CLI and TUI use it directly.
func BuildService(cfg config.Config) (*App, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	current := analyses.NewCurrentStore()
	return &App{
		Config:          cfg,
		LLM:             provider,
		Current:         current,
		AnalysesService: analyses.NewService(provider, cfg.LLMProvider, cfg.LLMModel, current),
	}, nil
}

// NewProvider selects the LLM client for cfg.LLMProvider.
func NewProvider(cfg config.Config) (llm.Provider, error) {
	model := cfg.LLMModel
	if strings.TrimSpace(model) == "" {
		model = config.DefaultModel(cfg.LLMProvider)
	}
	switch cfg.LLMProvider {
	case config.ProviderGemini, "":
		return gemini.NewClient(cfg.APIKey, model, cfg.LLMTimeout), nil
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.APIKey, model, cfg.LLMTimeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
