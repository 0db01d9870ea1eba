// Package database opens GORM connections and inspects table layouts.
//
// # Connect
//
// Connect supports MySQL for deployments and SQLite for local runs and tests. The same
// timeout bounds connection setup, I/O and the initial ping.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on either dialect. The catalog database store
// uses it to detect a catalog_items table whose layout no longer matches before reading rows.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.GetTableColumns(db, "catalog_items")
package database
