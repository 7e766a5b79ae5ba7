// Package config loads application configuration from environment variables
// into typed structs, with per-type caching.
//
// It combines github.com/joho/godotenv for .env file loading with
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type ServerConfig struct {
//	    Host string `env:"HOST" envDefault:"localhost"`
//	    Port int    `env:"PORT" envDefault:"8080"`
//	    Key  string `env:"API_KEY,required"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Each configuration type is parsed once per process and cached by value;
// concurrent Load calls for the same type are safe. Tests that change the
// environment can use ForceReload or ResetCache.
//
// Sentinel errors (ErrParsingConfig, ErrLoadingEnvFiles, ErrNilPointer) are
// joined with the underlying cause and work with errors.Is.
package config
