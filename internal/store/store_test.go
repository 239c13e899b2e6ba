package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamar-morrison/recurr-sub000/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadSubscriptions(t *testing.T) {
	csv := `id,name,category,amount,currency,cycle,billing_day,start_date,end_date,created_at,status,archived
sub-1,Netflix,Streaming,9.99,usd,monthly,15,2023-01-15,,2023-01-15,active,false
sub-2,Spotify,Music,10.99,EUR,Monthly,,,,2024-02-10,,false
sub-3,Old Gym,Fitness,25,USD,monthly,,2022-01-01,2023-06-01,2022-01-01,,true
sub-4,Domain,Other,12,USD,yearly,,2024-03-01,,2024-03-01,paused,false
`
	path := writeFile(t, "subscriptions.csv", csv)

	subs, err := LoadSubscriptions(path)
	require.NoError(t, err)
	require.Len(t, subs, 4)

	netflix := subs[0]
	assert.Equal(t, "sub-1", netflix.ID)
	assert.Equal(t, "USD", netflix.Currency, "currency must be uppercased")
	assert.Equal(t, models.CycleMonthly, netflix.Cycle)
	assert.Equal(t, 15, netflix.BillingDay)
	require.NotNil(t, netflix.StartDate)
	assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.Local), *netflix.StartDate)
	assert.True(t, decimal.NewFromFloat(9.99).Equal(netflix.Amount))

	spotify := subs[1]
	assert.Nil(t, spotify.StartDate)
	assert.Equal(t, models.Status(""), spotify.Status, "absent status stays empty for legacy derivation")
	assert.Equal(t, models.StatusActive, spotify.EffectiveStatus())

	gym := subs[2]
	require.NotNil(t, gym.EndDate)
	assert.True(t, gym.IsArchived)
	assert.Equal(t, models.StatusArchived, gym.EffectiveStatus())

	domain := subs[3]
	assert.Equal(t, models.StatusPaused, domain.EffectiveStatus())
	assert.Equal(t, models.CycleYearly, domain.Cycle)
}

func TestLoadSubscriptionsSanitizesAmounts(t *testing.T) {
	csv := `id,name,category,amount,currency,cycle,billing_day,start_date,end_date,created_at,status,archived
sub-1,Broken,Other,not-a-number,USD,monthly,,,,2024-01-01,,false
sub-2,Negative,Other,-5,USD,monthly,,,,2024-01-01,,false
sub-3,Huge day,Other,5,USD,monthly,99,,,2024-01-01,,false
`
	subs, err := LoadSubscriptions(writeFile(t, "subscriptions.csv", csv))
	require.NoError(t, err)
	require.Len(t, subs, 3)

	assert.True(t, subs[0].Amount.IsZero(), "malformed amount coerced to zero")
	assert.True(t, subs[1].Amount.IsZero(), "negative amount coerced to zero")
	assert.Equal(t, 31, subs[2].BillingDay, "billing day clamped into range")
}

func TestLoadSubscriptionsSkipsInvalidRows(t *testing.T) {
	csv := `id,name,category,amount,currency,cycle,billing_day,start_date,end_date,created_at,status,archived
sub-1,Good,Other,5,USD,monthly,,,,2024-01-01,,false
sub-2,Bad cycle,Other,5,USD,daily,,,,2024-01-01,,false
sub-3,Bad date,Other,5,USD,monthly,,,,garbage,,false
`
	subs, err := LoadSubscriptions(writeFile(t, "subscriptions.csv", csv))
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub-1", subs[0].ID)
}

func TestLoadSubscriptionsEpochMillisDates(t *testing.T) {
	// 2023-01-15T00:00:00Z in epoch milliseconds.
	csv := `id,name,category,amount,currency,cycle,billing_day,start_date,end_date,created_at,status,archived
sub-1,Mobile export,Other,5,USD,monthly,,1673740800000,,1673740800000,,false
`
	subs, err := LoadSubscriptions(writeFile(t, "subscriptions.csv", csv))
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].StartDate)
	assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), subs[0].StartDate.UTC())
}

func TestLoadSubscriptionsMissingFile(t *testing.T) {
	_, err := LoadSubscriptions(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadCustomCategories(t *testing.T) {
	yaml := `categories:
  - name: Homelab
    color: "#34d399"
  - name: Charity
`
	customs, err := LoadCustomCategories(writeFile(t, "categories.yaml", yaml))
	require.NoError(t, err)
	require.Len(t, customs, 2)
	assert.Equal(t, "Homelab", customs[0].Name)
	assert.Equal(t, "#34d399", customs[0].Color)
	assert.Equal(t, "Charity", customs[1].Name)
}

func TestLoadCustomCategoriesMissingFileIsNotAnError(t *testing.T) {
	customs, err := LoadCustomCategories(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Empty(t, customs)
}

func TestRateTable(t *testing.T) {
	yaml := `base: usd
rates:
  usd: 1.0
  EUR: 0.5
  gbp: 0.25
`
	table, err := LoadRateTable(writeFile(t, "rates.yaml", yaml))
	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)

	rate, err := table.Rate("EUR", "usd")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2).Equal(rate), "got %s", rate)

	rate, err = table.Rate("gbp", "EUR")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2).Equal(rate), "cross rate through base, got %s", rate)

	_, err = table.Rate("USD", "JPY")
	assert.Error(t, err)

	// RateFunc satisfies the converter contract.
	fn := table.RateFunc()
	rate, err = fn("USD", "GBP")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(0.25).Equal(rate))
}
