// Package history implements the command printing a subscription's
// payment timeline.
package history

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/shamar-morrison/recurr-sub000/cmd/root"
	"github.com/shamar-morrison/recurr-sub000/internal/currencyutils"
	"github.com/shamar-morrison/recurr-sub000/internal/dateutils"
	"github.com/shamar-morrison/recurr-sub000/internal/history"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

var (
	name      string
	onDate    string
	pastCount int
	future    int
)

// Cmd is the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Show past and upcoming charges of a subscription",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&name, "name", "n", "", "subscription name or ID (required)")
	Cmd.Flags().StringVar(&onDate, "on", "", "reference date (YYYY-MM-DD, default today)")
	Cmd.Flags().IntVar(&pastCount, "past", 0, "past entries to show (default from config)")
	Cmd.Flags().IntVar(&future, "future", 0, "upcoming entries to show (default from config)")
	_ = Cmd.MarkFlagRequired("name")
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

	sub, err := findSubscription(subs, name)
	if err != nil {
		return err
	}

	opts := history.Options{
		Reference:    ref,
		FutureCount:  root.Cfg.History.FutureCount,
		MaxPastCount: root.Cfg.History.MaxPastCount,
	}
	if pastCount > 0 {
		opts.MaxPastCount = pastCount
	}
	if future > 0 {
		opts.FutureCount = future
	}

	entries := history.Generate(sub, opts)
	render(sub, entries)
	return nil
}

func findSubscription(subs []models.Subscription, key string) (models.Subscription, error) {
	for _, sub := range subs {
		if sub.ID == key || strings.EqualFold(sub.Name, key) {
			return sub, nil
		}
	}
	return models.Subscription{}, fmt.Errorf("no subscription named %q", key)
}

func render(sub models.Subscription, entries []models.PaymentEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s (%s)", sub.Name, sub.Cycle))
	t.AppendHeader(table.Row{"Date", "Amount", "Status"})

	for _, entry := range entries {
		status := text.FgGreen.Sprint("paid")
		if !entry.IsPast {
			status = text.FgYellow.Sprint("upcoming")
		}
		t.AppendRow(table.Row{
			entry.Date.Format(dateutils.DateLayoutISO),
			currencyutils.FormatAmount(entry.Amount, entry.Currency),
			status,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}
