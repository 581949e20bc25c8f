// Package config provides configuration management for the object gateway.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key, upload limit
//   - Storage: driver, endpoint, credentials, region, bucket, prefix path, retry bounds
//   - Log: logging level and format
//   - Database: optional journal database
//
// Every field is registered from its `default` tag, so any value can be set
// through the environment: storage.prefix_path becomes STORAGE_PREFIX_PATH.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
