// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shamar-morrison/recurr-sub000/internal/config"
	"github.com/shamar-morrison/recurr-sub000/internal/currencyutils"
	"github.com/shamar-morrison/recurr-sub000/internal/models"
	"github.com/shamar-morrison/recurr-sub000/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	SubscriptionsFile string
	IncludePaused     bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds flag values common to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "recurr",
		Short: "Track subscription billing dates and spending.",
		Long: `recurr derives upcoming billing dates, payment history and
spending aggregates from a plain subscriptions file. It performs no
network calls; currency conversion uses a local rate table.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to recurr!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			store.SetLogger(Log)
			currencyutils.SetLogger(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.SubscriptionsFile, "file", "f", "",
		"subscriptions CSV file (defaults to the configured data file)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.IncludePaused, "include-paused", false,
		"include paused subscriptions")
}

// SubscriptionsFile resolves the subscriptions file from the flag or
// the configuration.
func SubscriptionsFile() string {
	if SharedFlags.SubscriptionsFile != "" {
		return SharedFlags.SubscriptionsFile
	}
	return Cfg.Data.SubscriptionsFile
}

// LoadSubscriptions loads the subscription set every command operates
// on.
func LoadSubscriptions() ([]models.Subscription, error) {
	return store.LoadSubscriptions(SubscriptionsFile())
}
