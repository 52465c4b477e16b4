// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that configures
// a MySQL or SQLite connection based on the application's configuration. The
// connection backs the update journal.
//
// # Connect
//
// Connect picks the dialector for Config.Driver, applies pool settings for MySQL
// and verifies the connection with a ping bounded by TimeoutSeconds.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Journal disabled", zap.Error(err))
//	}
package database
