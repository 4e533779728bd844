package ratelimit

import (
	"strings"
)

// healthPath is exempt from limiting so liveness probes never starve.
const healthPath = "/health"

// MatchEndpoint resolves the endpoint configuration for a request path and
// method. Exact path matches win over prefix matches; a prefix entry is any
// config whose Path ends with "/" (e.g. "/resumes/" covers "/resumes/{id}").
// Returns nil when nothing matches and the default limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == healthPath && method == "GET" {
		return &EndpointConfig{Path: healthPath, Method: method}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && cfg.Path == path {
			return cfg
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method || !strings.HasSuffix(cfg.Path, "/") {
			continue
		}
		if strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
