package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init wires environment variables, an optional .env file and the command's
// persistent flags into viper. Flag names use dashes; the replacer maps them
// onto underscore-style environment variables (CHART_URL, RESULT_CAP, ...).
func Init(root *cobra.Command) {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyChartURL, "https://services.entrade.com.vn/chart-api/v2/ohlcs")
	viper.SetDefault(KeyAnalysisURL, "https://apipubaws.tcbs.com.vn/tcanalysis/v1")
	viper.SetDefault(KeyListingURL, "https://raw.githubusercontent.com/thinh-vu/vnstock/beta/data/listing_companies_enhanced-2023.csv")
	viper.SetDefault(KeyRequestTimeout, 30*time.Second)
	viper.SetDefault(KeyResultCap, 100)
	viper.SetDefault(KeyLogLevel, "info")
}

func Transport() string              { return viper.GetString(KeyTransport) }
func Host() string                   { return viper.GetString(KeyHost) }
func Port() int                      { return viper.GetInt(KeyPort) }
func ChartURL() string               { return viper.GetString(KeyChartURL) }
func AnalysisURL() string            { return viper.GetString(KeyAnalysisURL) }
func ListingURL() string             { return viper.GetString(KeyListingURL) }
func RequestTimeout() time.Duration  { return viper.GetDuration(KeyRequestTimeout) }
func ResultCap() int                 { return viper.GetInt(KeyResultCap) }
func LogLevel() string               { return viper.GetString(KeyLogLevel) }
