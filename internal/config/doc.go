// Package config provides configuration management for the ML GitOps service.
//
// Configuration is loaded from environment variables using the env package.
// APP_VERSION is the only variable that affects the service responses; it
// falls back to "v1" when absent or empty. All other values have sensible
// defaults for development use.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
