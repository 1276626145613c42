package config

const EnvPrefix = "BOONDOCKS"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv        = "BOONDOCKS_APP_ENV"
	EnvPort          = "BOONDOCKS_APP_PORT"
	EnvLogLevel      = "BOONDOCKS_LOG_LEVEL"
	EnvCatalogPath   = "BOONDOCKS_CATALOG_PATH"
	EnvReceiptHeader = "BOONDOCKS_RECEIPT_HEADER"
)
