// Package config reads configuration structs from the environment.
//
// A struct declares its settings through caarlos0/env tags, and [Load]
// fills it in. Before the first parse the package pulls in a .env file
// from the working directory when one exists, so local runs need no
// exported variables.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// [MustLoad] panics instead of returning the error, which suits startup
// code where a half-configured process must not come up.
//
// # Caching
//
// Parsing happens once per struct type. Every later Load of the same type
// copies the cached value, so packages can load their own config without
// coordinating, and without re-reading the environment:
//
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&VendorConfig{}) // parsed separately, cached separately
package config
