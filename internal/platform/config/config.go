package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds core configuration.
type Config struct {
	// BalanceTolerance is the absolute tolerance applied to balance checks.
	// The dashboard this core was extracted from used 0.01 regardless of
	// currency; kept as the default, overridable per deployment.
	BalanceTolerance decimal.Decimal
	// ReportDateFormat is the layout used for dates in report output and
	// export filenames.
	ReportDateFormat string
	// CSVUseCRLF selects \r\n line endings for exported CSV.
	CSVUseCRLF   bool
	IsProduction bool
}

const defaultBalanceTolerance = "0.01"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("BALANCE_TOLERANCE", defaultBalanceTolerance)
	viper.SetDefault("REPORT_DATE_FORMAT", "2006-01-02")
	viper.SetDefault("CSV_CRLF", false)
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	toleranceStr := viper.GetString("BALANCE_TOLERANCE")
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil || tolerance.IsNegative() {
		tolerance = decimal.RequireFromString(defaultBalanceTolerance)
		if toleranceStr != "" {
			log.Printf("Warning: Invalid value for BALANCE_TOLERANCE ('%s'). Defaulting to %s.\n", toleranceStr, tolerance.String())
		}
	}
	cfg.BalanceTolerance = tolerance

	cfg.ReportDateFormat = viper.GetString("REPORT_DATE_FORMAT")
	if cfg.ReportDateFormat == "" {
		cfg.ReportDateFormat = "2006-01-02"
	}

	cfg.CSVUseCRLF = viper.GetBool("CSV_CRLF")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}
