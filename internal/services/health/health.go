package health

import (
	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/shared/server/respond"
)

// Checker reports whether AI features are available.
type Checker interface {
	Enabled() bool
}

// Status is the health payload.
type Status struct {
	OK        bool   `json:"ok"`
	AIEnabled bool   `json:"aiEnabled"`
	Provider  string `json:"provider"`
}

// Service encapsulates health-related checks.
type Service struct {
	AI       Checker
	Provider string
}

// NewService constructs a new health service.
func NewService(ai Checker, provider string) *Service {
	return &Service{AI: ai, Provider: provider}
}

// Status returns the health payload. A missing credential is degraded mode,
// not a failure, so OK stays true.
func (s *Service) Status() Status {
	return Status{
		OK:        true,
		AIEnabled: s.AI != nil && s.AI.Enabled(),
		Provider:  s.Provider,
	}
}

// RegisterRoutes attaches GET /health.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		respond.OK(c, s.Status())
	})
}
