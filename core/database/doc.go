// Package database handles the optional journal database connection.
//
// It wraps GORM and configures either a MySQL connection (production) or a
// SQLite file/in-memory database (local runs and tests).
//
// The connection is optional: callers log a warning and carry on without
// the journal when Connect fails.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
