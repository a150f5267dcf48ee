package config

import (
	"os"
	"strings"
)

// CorsOrigins reads a comma separated CORS_ORIGINS list. An empty result
// allows every origin.
func CorsOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
