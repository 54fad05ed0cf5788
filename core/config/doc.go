// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/storefront/core/config"
//
//	type AppConfig struct {
//		BasePath     string `env:"BASE_PATH" envDefault:"/"`
//		RootSelector string `env:"ROOT_SELECTOR" envDefault:"#root"`
//		APIBaseURL   string `env:"API_BASE_URL,required"`
//	}
//
//	func main() {
//		var cfg AppConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 AppConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 AppConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&RedisConfig{})
//
// # YAML Files
//
// LoadYAML overlays an optional file on an already populated struct; a missing
// file is not an error:
//
//	cfg := ServeConfig{Addr: ":5173"}
//	if err := config.LoadYAML("storefront.yaml", &cfg); err != nil {
//		return err
//	}
package config
