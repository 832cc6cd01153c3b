package settings

import "github.com/psiagenda/agenda-service/pkg/dbmetrics"

// DBExecutor is the query surface of *sql.DB and *dbmetrics.DB alike
type DBExecutor = dbmetrics.DBExecutor
