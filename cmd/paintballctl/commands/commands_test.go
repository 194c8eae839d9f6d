//go:build unit

package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paintball-booking/cmd/paintballctl/commands"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const venueTOML = `
timezone = "Europe/Paris"
slot_step_min = 60

[pricing]
nocturne_threshold_hour = 20
nocturne_per_person_cents = 300
min_players = 10
penalty_per_missing_cents = 2500

[deposit]
type = "percent"
value = 30
stripe_enabled = true

[hours.friday]
open = "09:00"
close = "23:00"
`

func writeVenue(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venue.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuote(t *testing.T) {
	venue := writeVenue(t, venueTOML)

	out, err := run(t, "", "quote", "--venue", venue,
		"--price", "2000", "--group", "8",
		"--start", "2026-06-12T21:00:00+02:00",
		"--addon", "500:2")
	require.NoError(t, err)

	var got struct {
		TotalCents   int64 `json:"totalCents"`
		DepositCents int64 `json:"depositCents"`
		Nocturne     bool  `json:"nocturne"`
		EndISO       string
		Breakdown    map[string]int64 `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, int64(24400), got.TotalCents)
	assert.Equal(t, int64(7320), got.DepositCents)
	assert.True(t, got.Nocturne)
	assert.Equal(t, "2026-06-12T23:00:00+02:00", got.EndISO)
	assert.Equal(t, map[string]int64{
		"base":            16000,
		"addons":          1000,
		"nocturneExtra":   2400,
		"underMinPenalty": 5000,
	}, got.Breakdown)
}

func TestQuote_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "start without offset", args: []string{"quote", "--price", "2000", "--group", "8", "--start", "2026-06-12T21:00:00"}},
		{name: "malformed addon", args: []string{"quote", "--price", "2000", "--group", "8", "--start", "2026-06-12T21:00:00Z", "--addon", "500"}},
		{name: "negative price", args: []string{"quote", "--price", "-1", "--group", "8", "--start", "2026-06-12T21:00:00Z"}},
		{name: "missing group", args: []string{"quote", "--price", "2000", "--start", "2026-06-12T21:00:00Z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, "", tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestSlots(t *testing.T) {
	venue := writeVenue(t, venueTOML)

	t.Run("open day lists every start that fits", func(t *testing.T) {
		out, err := run(t, "", "slots", "--venue", venue, "--date", "2026-06-12", "--duration", "120")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 13)
		assert.Equal(t, "2026-06-12T09:00:00+02:00", lines[0])
		assert.Equal(t, "2026-06-12T19:00:00+02:00", lines[10])
		assert.Equal(t, "2026-06-12T20:00:00+02:00 nocturne", lines[11])
		assert.Equal(t, "2026-06-12T21:00:00+02:00 nocturne", lines[12])
	})

	t.Run("day missing from the venue file is closed", func(t *testing.T) {
		out, err := run(t, "", "slots", "--venue", venue, "--date", "2026-06-13")
		require.NoError(t, err)
		assert.Equal(t, "closed\n", out)
	})

	t.Run("sub-minute step is refused", func(t *testing.T) {
		_, err := run(t, "", "slots", "--venue", venue, "--date", "2026-06-12", "--step", "1e-300")
		ve, ok := errs.AsValidation(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, "stepMin", ve.Field)
	})

	t.Run("unknown weekday key is rejected", func(t *testing.T) {
		bad := writeVenue(t, venueTOML+"\n[hours.funday]\nopen = \"09:00\"\nclose = \"10:00\"\n")
		_, err := run(t, "", "slots", "--venue", bad, "--date", "2026-06-12")
		assert.ErrorContains(t, err, "funday")
	})
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "correct-horse-battery\n", "hash-password")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, password.ComparePassword(hash, "correct-horse-battery"))
	assert.Error(t, password.ComparePassword(hash, "wrong-password"))

	t.Run("cost flag is honoured", func(t *testing.T) {
		out, err := run(t, "correct-horse-battery\n", "hash-password", "--cost", "4")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "$2a$04$"), "got %q", out)
	})

	t.Run("short password is refused", func(t *testing.T) {
		_, err := run(t, "short\n", "hash-password")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}
