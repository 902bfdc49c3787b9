// Package config provides configuration management for the Bucket Manager.
//
// It loads a .env file with godotenv (skipped inside containers) and then uses Viper
// to read environment variables, falling back to the `default` struct tags.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Storage: endpoint, credentials, region and presign defaults
//   - Log: logging level and format
//
// Keys map to variables by upper-casing and replacing dots with underscores
// (storage.access_key -> STORAGE_ACCESS_KEY). The storage endpoint and credentials
// are also read from ENDPOINT_URL_YOUR_BUCKET, KEY_ID_YOUR_ACCOUNT and
// APPLICATION_KEY_YOUR_ACCOUNT.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
