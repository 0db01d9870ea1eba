// Package config loads the application configuration.
//
// Defaults come from the `default` struct tags of every section, an optional
// config.yaml in the given directory overrides them and environment variables
// (including those from a .env file) override both. Nested keys map to upper-case
// variables joined by underscores, so steam.api_key is read from STEAM_API_KEY.
//
// Sections:
//   - Server: listen address, API key and request timeout
//   - Steam: Web API key, endpoint and language
//   - Catalog: schema cache backend (file, storage or database)
//   - Storage: S3/MinIO credentials for the storage backend
//   - Database: connection details for the database backend
//   - Log: level and format
//
//	cfg, err := config.LoadConfig(".")
package config
