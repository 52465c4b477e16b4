// Package config provides configuration management for the update reconciler.
//
// It loads an optional .env file with godotenv and then uses Viper for
// environment variables, with defaults taken from the `default` struct tags of
// every section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: journal database (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the scenario bucket
//   - Log: Logging level and format
//   - Reconcile: validation strictness and journaling
//
// Environment variables map to nested keys, e.g. RECONCILE_STRICT_POSITIONS
// sets reconcile.strict_positions.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
