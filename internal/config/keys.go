package config

const (
	KeyTransport      = "transport"
	KeyHost           = "host"
	KeyPort           = "port"
	KeyChartURL       = "chart-url"
	KeyAnalysisURL    = "analysis-url"
	KeyListingURL     = "listing-url"
	KeyRequestTimeout = "request-timeout"
	KeyResultCap      = "result-cap"
	KeyLogLevel       = "log-level"
)
