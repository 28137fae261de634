package persistence

// Default paths for the record file of each backend and for the config file.
const (
	DefaultRecordPath = "./emp_manag_sys.json"
	DefaultSQLitePath = "./emp_manag_sys.db"
	DefaultConfigPath = "./config.yaml"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)
