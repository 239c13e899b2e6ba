// Package next implements the command listing upcoming billing dates.
package next

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shamar-morrison/recurr-sub000/cmd/root"
	"github.com/shamar-morrison/recurr-sub000/internal/currencyutils"
	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
	"github.com/shamar-morrison/recurr-sub000/internal/recurrence"
	"github.com/shamar-morrison/recurr-sub000/internal/spending"
)

var onDate string

// Cmd is the next command
var Cmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next billing date of each subscription",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVar(&onDate, "on", "", "reference date (YYYY-MM-DD, default today)")
}

type upcoming struct {
	sub     models.Subscription
	next    time.Time
	monthly decimal.Decimal
	ended   bool
}

func run(cmd *cobra.Command, args []string) error {
	ref := time.Now()
	if onDate != "" {
		parsed, err := time.ParseInLocation(dateutils.DateLayoutISO, onDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --on date: %w", err)
		}
		ref = parsed
	}

	subs, err := root.LoadSubscriptions()
	if err != nil {
		return err
	}

	var rows []upcoming
	for _, sub := range subs {
		if sub.Archived() {
			continue
		}
		if sub.Paused() && !root.SharedFlags.IncludePaused {
			continue
		}

		next := recurrence.NextOccurrence(ref, sub.Cycle, recurrence.Anchor(sub))
		row := upcoming{
			sub:     sub,
			next:    next,
			monthly: spending.MonthlyEquivalent(sub.Amount, sub.Cycle),
		}
		if sub.EndDate != nil && !next.Before(dateutils.Midnight(*sub.EndDate)) {
			row.ended = true
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].next.Equal(rows[j].next) {
			return rows[i].next.Before(rows[j].next)
		}
		return rows[i].sub.Name < rows[j].sub.Name
	})

	render(rows, ref)
	return nil
}

func render(rows []upcoming, ref time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Category", "Cycle", "Next Charge", "In", "Amount", "Monthly"})

	primary := ""
	totalMonthly := decimal.Zero
	sameCurrency := true

	for i, row := range rows {
		if i == 0 {
			primary = row.sub.NormalizedCurrency()
		} else if row.sub.NormalizedCurrency() != primary {
			sameCurrency = false
		}

		nextStr := row.next.Format(dateutils.DateLayoutISO)
		inStr := fmt.Sprintf("%dd", dateutils.DiffDays(ref, row.next))
		if row.ended {
			nextStr = text.FgHiBlack.Sprint("ended")
			inStr = text.FgHiBlack.Sprint("-")
		} else {
			totalMonthly = totalMonthly.Add(row.monthly)
		}

		t.AppendRow(table.Row{
			row.sub.Name,
			row.sub.Category,
			row.sub.Cycle.String(),
			nextStr,
			inStr,
			currencyutils.FormatAmount(row.sub.Amount, row.sub.Currency),
			currencyutils.FormatAmount(row.monthly, row.sub.Currency),
		})
	}

	t.AppendSeparator()
	totalStr := currencyutils.FormatAmount(totalMonthly, primary)
	if !sameCurrency {
		// Mixed currencies are summed without conversion; the
		// spending command converts through the rate table.
		totalStr += " (mixed currencies)"
	}
	t.AppendFooter(table.Row{"", "", "", "", "", text.Bold.Sprint("Total monthly"), text.Bold.Sprint(totalStr)})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	t.Render()
}
