// Package config loads the papertrade runtime settings. It uses Viper to
// read environment variables (PT_ prefix) with an optional .env file, the
// same layout the server and the CLI `serve` command share.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/simbroker/papertrade"
)

// Config holds all the configuration variables for the papertrade server.
type Config struct {
	ListenAddr   string `mapstructure:"PT_LISTEN_ADDR"`
	Currency     string `mapstructure:"PT_CURRENCY"`
	Prices       string `mapstructure:"PT_PRICES"`
	DefaultPrice string `mapstructure:"PT_DEFAULT_PRICE"`
}

// Load reads configuration from environment variables, falling back to a
// .env file in path when present.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()

	v.SetDefault("PT_LISTEN_ADDR", ":8372")
	v.SetDefault("PT_CURRENCY", "USD")
	// The reference price table; override with PT_PRICES.
	v.SetDefault("PT_PRICES", "AAPL=170,TSLA=250,GOOGL=2700")
	// Price served for symbols missing from the table. Set empty to
	// reject unknown symbols instead.
	v.SetDefault("PT_DEFAULT_PRICE", "100")

	for _, key := range []string{"PT_LISTEN_ADDR", "PT_CURRENCY", "PT_PRICES", "PT_DEFAULT_PRICE"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		// The .env file is optional; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Oracle builds the price oracle described by the config: the PT_PRICES
// table in the configured currency, plus the PT_DEFAULT_PRICE fallback
// when one is set.
func (c Config) Oracle() (papertrade.PriceOracle, error) {
	table := make(map[string]papertrade.Money)
	for _, pair := range strings.Split(c.Prices, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		symbol, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed price entry %q, want SYMBOL=PRICE", pair)
		}
		price, err := papertrade.ParseMoney(strings.TrimSpace(value), c.Currency)
		if err != nil {
			return nil, fmt.Errorf("price for %q: %w", symbol, err)
		}
		table[strings.TrimSpace(symbol)] = price
	}

	oracle := papertrade.NewStaticOracle(table)
	if c.DefaultPrice != "" {
		fallback, err := papertrade.ParseMoney(c.DefaultPrice, c.Currency)
		if err != nil {
			return nil, fmt.Errorf("default price: %w", err)
		}
		oracle = oracle.WithFallback(fallback)
	}
	return oracle, nil
}
