// Package spending implements the spending report command.
package spending

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shamar-morrison/recurr-sub000/cmd/root"
	"github.com/shamar-morrison/recurr-sub000/internal/currencyutils"
	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
	"github.com/shamar-morrison/recurr-sub000/internal/spending"
	"github.com/shamar-morrison/recurr-sub000/internal/store"
)

var (
	preset   string
	fromDate string
	toDate   string
	groupBy  string
	currency string
)

// Cmd is the spending command
var Cmd = &cobra.Command{
	Use:   "spending",
	Short: "Show spending totals by month or category",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&preset, "preset", "p", "", "date range preset: 6months, ytd, year, alltime")
	Cmd.Flags().StringVar(&fromDate, "from", "", "range start (YYYY-MM-DD, overrides preset)")
	Cmd.Flags().StringVar(&toDate, "to", "", "range end (YYYY-MM-DD, overrides preset)")
	Cmd.Flags().StringVarP(&groupBy, "by", "b", "month", "grouping: month or category")
	Cmd.Flags().StringVarP(&currency, "currency", "c", "", "target currency (default: first-seen currency)")
}

func run(cmd *cobra.Command, args []string) error {
	subs, err := root.LoadSubscriptions()
	if err != nil {
		return err
	}

	dateRange, err := resolveRange()
	if err != nil {
		return err
	}

	opts := spending.Options{
		IncludePaused:   root.SharedFlags.IncludePaused || root.Cfg.Spending.IncludePaused,
		PrimaryCurrency: currency,
	}
	if opts.PrimaryCurrency == "" {
		opts.PrimaryCurrency = root.Cfg.Currency.Primary
	}

	customs, err := store.LoadCustomCategories(root.Cfg.Data.CategoriesFile)
	if err != nil {
		return err
	}
	opts.CustomCategories = customs

	opts.Rates = resolveRates(subs)

	switch groupBy {
	case "month":
		points, err := spending.ByMonth(subs, dateRange.Start, dateRange.End, opts)
		if err != nil {
			return err
		}
		total, err := spending.Total(subs, dateRange.Start, dateRange.End, opts)
		if err != nil {
			return err
		}
		renderMonths(dateRange, points, total, targetLabel(subs, opts))
	case "category":
		categories, err := spending.ByCategory(subs, dateRange.Start, dateRange.End, opts)
		if err != nil {
			return err
		}
		renderCategories(dateRange, categories, targetLabel(subs, opts))
	default:
		return fmt.Errorf("invalid --by value %q, want month or category", groupBy)
	}
	return nil
}

// resolveRange builds the reporting window from --from/--to when both
// are given, else from the preset (falling back to the configured
// default).
func resolveRange() (models.DateRange, error) {
	if fromDate != "" || toDate != "" {
		if fromDate == "" || toDate == "" {
			return models.DateRange{}, fmt.Errorf("--from and --to must be given together")
		}
		start, err := time.ParseInLocation(dateutils.DateLayoutISO, fromDate, time.Local)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("invalid --from date: %w", err)
		}
		end, err := time.ParseInLocation(dateutils.DateLayoutISO, toDate, time.Local)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("invalid --to date: %w", err)
		}
		if end.Before(start) {
			return models.DateRange{}, fmt.Errorf("--to is before --from")
		}
		return models.DateRange{
			Start: start,
			End:   dateutils.EndOfDay(end),
			Label: fmt.Sprintf("%s to %s", fromDate, toDate),
		}, nil
	}

	name := preset
	if name == "" {
		name = root.Cfg.Spending.DefaultPreset
	}
	return spending.GetDateRange(name, time.Now()), nil
}

// resolveRates loads the configured rate table. Without one, a mixed
// set is summed without conversion and the report says so; the engine
// itself never substitutes silent 1:1 rates.
func resolveRates(subs []models.Subscription) currencyutils.RateFunc {
	info := currencyutils.DetectMixedCurrencies(subs)
	if !info.HasMixedCurrencies {
		return nil
	}

	rates, err := store.LoadRateTable(root.Cfg.Currency.RatesFile)
	if err != nil {
		root.Log.WithError(err).Warn("No rate table available; mixed currencies are summed without conversion")
		return unitRate
	}
	return rates.RateFunc()
}

// unitRate is the explicit no-conversion fallback the user is warned
// about; it is a caller decision, not engine behavior.
func unitRate(from, to string) (decimal.Decimal, error) {
	return decimal.NewFromInt(1), nil
}

// targetLabel mirrors the engine's currency resolution so the table
// header names the currency the totals are actually expressed in.
func targetLabel(subs []models.Subscription, opts spending.Options) string {
	if opts.PrimaryCurrency != "" {
		return opts.PrimaryCurrency
	}
	visible := make([]models.Subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.Paused() && !opts.IncludePaused {
			continue
		}
		visible = append(visible, sub)
	}
	return currencyutils.DetectMixedCurrencies(visible).PrimaryCurrency
}

func renderMonths(dateRange models.DateRange, points []models.SpendingDataPoint, total decimal.Decimal, target string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(dateRange.Label)
	t.AppendHeader(table.Row{"Month", "Spent"})

	for _, p := range points {
		t.AppendRow(table.Row{p.Label, currencyutils.FormatAmount(p.Amount, target)})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("Total"), text.Bold.Sprint(currencyutils.FormatAmount(total, target))})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

func renderCategories(dateRange models.DateRange, categories []models.CategorySpending, target string) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(dateRange.Label)
	t.AppendHeader(table.Row{"Category", "Spent", "Share"})

	for _, c := range categories {
		t.AppendRow(table.Row{
			c.Category,
			currencyutils.FormatAmount(c.Amount, target),
			fmt.Sprintf("%.1f%%", c.Percentage),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}
