// Package store provides read-only loaders for the plain data files
// backing the engine: subscriptions (CSV), custom categories (YAML)
// and a static conversion-rate table (YAML). The store normalizes
// records before they reach the engine; the engine itself performs no
// I/O.
package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/shamar-morrison/recurr-sub000/internal/config"
	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/logging"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// subscriptionRow maps one CSV record. Dates are ISO (2006-01-02);
// start_date, end_date, status and billing_day may be empty.
type subscriptionRow struct {
	ID         string `csv:"id"`
	Name       string `csv:"name"`
	Category   string `csv:"category"`
	Amount     string `csv:"amount"`
	Currency   string `csv:"currency"`
	Cycle      string `csv:"cycle"`
	BillingDay string `csv:"billing_day"`
	StartDate  string `csv:"start_date"`
	EndDate    string `csv:"end_date"`
	CreatedAt  string `csv:"created_at"`
	Status     string `csv:"status"`
	Archived   string `csv:"archived"`
}

// LoadSubscriptions reads and normalizes subscription records from a
// CSV file. Malformed numeric fields are sanitized to safe defaults
// rather than rejected; a row missing its cycle or creation date is
// skipped with a warning.
func LoadSubscriptions(path string) ([]models.Subscription, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening subscriptions file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []subscriptionRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing subscriptions file: %w", err)
	}

	subs := make([]models.Subscription, 0, len(rows))
	for _, row := range rows {
		sub, err := row.toSubscription()
		if err != nil {
			log.WithFields(logrus.Fields{
				logging.FieldSubscription: row.Name,
				logging.FieldError:        err.Error(),
			}).Warn("Skipping invalid subscription row")
			continue
		}
		subs = append(subs, sub)
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: len(subs),
	}).Info("Loaded subscriptions")
	return subs, nil
}

func (r subscriptionRow) toSubscription() (models.Subscription, error) {
	cycle, err := models.ParseBillingCycle(r.Cycle)
	if err != nil {
		return models.Subscription{}, err
	}

	createdAt, err := parseDate(r.CreatedAt)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("created_at: %w", err)
	}

	sub := models.Subscription{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		Amount:     parseAmount(r.Amount),
		Currency:   strings.ToUpper(strings.TrimSpace(r.Currency)),
		Cycle:      cycle,
		CreatedAt:  createdAt,
		IsArchived: parseBool(r.Archived),
	}

	// An absent status stays empty so EffectiveStatus can fall back
	// to the legacy archived flag.
	if strings.TrimSpace(r.Status) != "" {
		sub.Status = models.ParseStatus(r.Status)
	}

	if r.BillingDay != "" {
		if day, err := strconv.ParseFloat(strings.TrimSpace(r.BillingDay), 64); err == nil {
			sub.BillingDay = dateutils.ClampBillingDay(day)
		}
	}

	if r.StartDate != "" {
		start, err := parseDate(r.StartDate)
		if err != nil {
			return models.Subscription{}, fmt.Errorf("start_date: %w", err)
		}
		sub.StartDate = &start
	}
	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		if err != nil {
			return models.Subscription{}, fmt.Errorf("end_date: %w", err)
		}
		sub.EndDate = &end
	}

	return sub, nil
}

// parseAmount sanitizes rather than rejects: a malformed or negative
// amount becomes zero so one bad row never blocks a report.
func parseAmount(s string) decimal.Decimal {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return decimal.Zero
	}
	return models.AmountFromFloat(f)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{dateutils.DateLayoutISO, dateutils.DateLayoutFull, time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	// Epoch milliseconds, the format the mobile client exports.
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).In(time.Local), nil
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", s)
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
