package config

import (
	"fmt"
	"os"
)

// Scoring policy names accepted in ANALYSIS_POLICY.
const (
	PolicyHybrid = "hybrid"
	PolicyLocal  = "local"
)

// ServiceConfig holds the top-level service configuration.
type ServiceConfig struct {
	DatabaseURL string
	// GeminiAPIKey authenticates the similarity collaborator. Required for
	// the hybrid policy, unused for local.
	GeminiAPIKey string
	// Policy selects the scoring strategy: "hybrid" (default) blends the
	// heuristic rules with the similarity score, "local" runs the legacy
	// heuristic only.
	Policy string
	// SimilarityRequired makes a similarity-collaborator failure abort the
	// request instead of degrading to the local policy.
	SimilarityRequired bool
}

// NewServiceConfig reads DATABASE_URL (required), GEMINI_API_KEY (required
// for the hybrid policy), ANALYSIS_POLICY and SIMILARITY_REQUIRED from the
// environment.
func NewServiceConfig() (*ServiceConfig, error) {
	cfg := &ServiceConfig{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		Policy:             os.Getenv("ANALYSIS_POLICY"),
		SimilarityRequired: os.Getenv("SIMILARITY_REQUIRED") == "true",
	}
	if cfg.Policy == "" {
		cfg.Policy = PolicyHybrid
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ServiceConfig) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	switch c.Policy {
	case PolicyHybrid:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the %s policy", PolicyHybrid)
		}
	case PolicyLocal:
		// No collaborator needed.
	default:
		return fmt.Errorf("unknown ANALYSIS_POLICY: %q (expected %q or %q)", c.Policy, PolicyHybrid, PolicyLocal)
	}
	return nil
}
