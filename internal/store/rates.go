package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/shamar-morrison/recurr-sub000/internal/currencyutils"
	"github.com/shamar-morrison/recurr-sub000/internal/logging"
)

// RateTable is a static conversion table loaded from YAML:
//
//	base: USD
//	rates:
//	  USD: 1.0
//	  EUR: 0.92
//	  GBP: 0.79
//
// Each rate is the number of units of that currency per one unit of
// the base. Cross rates are derived from the base.
type RateTable struct {
	Base  string             `yaml:"base"`
	Rates map[string]float64 `yaml:"rates"`
}

// LoadRateTable reads a conversion-rate table from a YAML file.
func LoadRateTable(path string) (*RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rates file: %w", err)
	}

	var table RateTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error parsing rates file: %w", err)
	}

	// Normalize codes once so lookups can fold case cheaply.
	normalized := make(map[string]float64, len(table.Rates))
	for code, rate := range table.Rates {
		normalized[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	table.Rates = normalized
	table.Base = strings.ToUpper(strings.TrimSpace(table.Base))

	log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: len(table.Rates),
	}).Debug("Loaded rate table")
	return &table, nil
}

// Rate returns the multiplier converting one unit of `from` into
// `to`, derived as a cross rate through the base currency.
func (t *RateTable) Rate(from, to string) (decimal.Decimal, error) {
	fromRate, ok := t.Rates[strings.ToUpper(strings.TrimSpace(from))]
	if !ok || fromRate == 0 {
		return decimal.Zero, fmt.Errorf("no rate for currency %s", from)
	}
	toRate, ok := t.Rates[strings.ToUpper(strings.TrimSpace(to))]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for currency %s", to)
	}
	return decimal.NewFromFloat(toRate).Div(decimal.NewFromFloat(fromRate)), nil
}

// RateFunc adapts the table to the converter's injected-rate contract.
func (t *RateTable) RateFunc() currencyutils.RateFunc {
	return t.Rate
}
