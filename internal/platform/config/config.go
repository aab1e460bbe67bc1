package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/stablefx/coin_quote_app/internal/core/domain"
)

// Config holds application configuration: the static rate table, the fee
// model, amount limits, and server settings. It is constructed once at
// process start and never mutated; a runtime rate update means building a
// new Config and swapping the reference between calculation calls.
type Config struct {
	Port         string
	IsProduction bool

	// Rate table, keyed by upper-case currency code.
	InterbankRates map[string]decimal.Decimal
	CustomerRates  map[string]decimal.Decimal
	Symbols        map[string]string

	FeeModel domain.FeeModel
	Limits   domain.AmountLimits

	// StablecoinCode is the stablecoin the quote engine prices fiat
	// against (display metadata; the rate table is quoted per fiat code).
	StablecoinCode string

	// LegacyNetworkFeeCurrency, when non-empty, reproduces the original
	// mock pricing model in which only this one non-reference currency
	// converted the flat network fee and every other code received the
	// raw reference-currency magnitude. Left empty, the fee is converted
	// for every currency. Kept as a compatibility switch for fixture
	// validation.
	LegacyNetworkFeeCurrency string
}

// Built-in demo table: one stablecoin (USDC), two fiat currencies. Every
// fiat code used for conversion must carry both an interbank and a
// customer rate; a code missing either is a configuration gap, not a
// runtime input error.
var (
	defaultInterbankRates = map[string]string{
		"USD": "1.0",
		"PHP": "59.0",
	}
	defaultCustomerRates = map[string]string{
		"USD": "0.9975",
		"PHP": "58.5",
	}
	defaultSymbols = map[string]string{
		"USD":  "$",
		"PHP":  "₱",
		"USDC": "$",
	}
)

// LoadConfig loads configuration from environment variables and a .env
// file if present. Missing values fall back to the built-in demo table
// and fee parameters.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PROVIDER_FEE_RATIO", "0.005")
	viper.SetDefault("FLAT_NETWORK_FEE", "2.0")
	viper.SetDefault("REFERENCE_CURRENCY", "USD")
	viper.SetDefault("STABLECOIN_CODE", "USDC")
	viper.SetDefault("MIN_AMOUNT", "0")
	viper.SetDefault("MAX_AMOUNT", "100000")
	viper.SetDefault("LEGACY_NETWORK_FEE_CURRENCY", "")
	viper.SetDefault("INTERBANK_RATES", defaultInterbankRates)
	viper.SetDefault("CUSTOMER_RATES", defaultCustomerRates)
	viper.SetDefault("CURRENCY_SYMBOLS", defaultSymbols)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		StablecoinCode: strings.ToUpper(viper.GetString("STABLECOIN_CODE")),

		LegacyNetworkFeeCurrency: strings.ToUpper(viper.GetString("LEGACY_NETWORK_FEE_CURRENCY")),
	}

	cfg.FeeModel = domain.FeeModel{
		ProviderFeeRatio:  parseDecimal("PROVIDER_FEE_RATIO", viper.GetString("PROVIDER_FEE_RATIO"), "0.005"),
		FlatNetworkFee:    parseDecimal("FLAT_NETWORK_FEE", viper.GetString("FLAT_NETWORK_FEE"), "2.0"),
		ReferenceCurrency: strings.ToUpper(viper.GetString("REFERENCE_CURRENCY")),
	}
	if cfg.FeeModel.ProviderFeeRatio.IsNegative() || cfg.FeeModel.ProviderFeeRatio.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		log.Printf("Warning: PROVIDER_FEE_RATIO %s outside [0,1). Defaulting to 0.005.\n", cfg.FeeModel.ProviderFeeRatio)
		cfg.FeeModel.ProviderFeeRatio = decimal.RequireFromString("0.005")
	}
	if cfg.FeeModel.FlatNetworkFee.IsNegative() {
		log.Println("Warning: FLAT_NETWORK_FEE is negative. Defaulting to 0.")
		cfg.FeeModel.FlatNetworkFee = decimal.Zero
	}

	cfg.Limits = domain.AmountLimits{
		Min: parseDecimal("MIN_AMOUNT", viper.GetString("MIN_AMOUNT"), "0"),
		Max: parseDecimal("MAX_AMOUNT", viper.GetString("MAX_AMOUNT"), "100000"),
	}
	if cfg.Limits.Min.IsNegative() {
		log.Printf("Warning: MIN_AMOUNT %s is negative. Defaulting to 0.\n", cfg.Limits.Min)
		cfg.Limits.Min = decimal.Zero
	}
	if !cfg.Limits.Max.IsPositive() {
		log.Printf("Warning: MAX_AMOUNT %s is not positive. Defaulting to 100000.\n", cfg.Limits.Max)
		cfg.Limits.Max = decimal.NewFromInt(100000)
	}
	if cfg.Limits.Min.GreaterThan(cfg.Limits.Max) {
		log.Printf("Warning: MIN_AMOUNT %s exceeds MAX_AMOUNT %s. Defaulting minimum to 0.\n", cfg.Limits.Min, cfg.Limits.Max)
		cfg.Limits.Min = decimal.Zero
	}

	cfg.InterbankRates = parseRateMap("INTERBANK_RATES", viper.GetStringMapString("INTERBANK_RATES"))
	cfg.CustomerRates = parseRateMap("CUSTOMER_RATES", viper.GetStringMapString("CUSTOMER_RATES"))

	cfg.Symbols = make(map[string]string, len(defaultSymbols))
	for code, symbol := range viper.GetStringMapString("CURRENCY_SYMBOLS") {
		cfg.Symbols[strings.ToUpper(code)] = symbol
	}

	// Every fiat code used for conversion needs both rates defined.
	for code := range cfg.CustomerRates {
		if _, ok := cfg.InterbankRates[code]; !ok {
			log.Printf("Warning: currency %s has a customer rate but no interbank rate; spread will be computed against the lenient default of 1.\n", code)
		}
	}

	return cfg, nil
}

// parseDecimal parses value, falling back (with a warning) when it is not
// a valid decimal.
func parseDecimal(key, value, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, value, fallback)
		return decimal.RequireFromString(fallback)
	}
	return d
}

// parseRateMap converts a string rate map into decimals, dropping (with a
// warning) entries that are not positive decimals.
func parseRateMap(key string, raw map[string]string) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(raw))
	for code, value := range raw {
		d, err := decimal.NewFromString(value)
		if err != nil || !d.IsPositive() {
			log.Printf("Warning: Invalid rate for %s in %s ('%s'). Entry dropped.\n", code, key, value)
			continue
		}
		rates[strings.ToUpper(code)] = d
	}
	return rates
}
