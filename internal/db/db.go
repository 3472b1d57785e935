package db

import "database/sql"

// DB wraps the SQL connection pool shared by the stores.
type DB struct {
	*sql.DB
}
