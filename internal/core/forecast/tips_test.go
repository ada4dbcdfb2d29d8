package forecast

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aevon-lab/pos-analytics/internal/signals"
	"github.com/stretchr/testify/require"
)

func writeTip(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestTipTable_MostSpecificRuleWins(t *testing.T) {
	tips := DefaultTips()

	highSunny := tips.Select(signals.FlowHigh, signals.Sunny, false)
	highSunnyPayday := tips.Select(signals.FlowHigh, signals.Sunny, true)
	rainy := tips.Select(signals.FlowStandard, signals.Rainy, false)
	fallback := tips.Select(signals.FlowMedium, signals.Cloudy, false)

	require.NotEqual(t, highSunny, highSunnyPayday)
	require.Contains(t, rainy, "Rain")
	require.Contains(t, fallback, "Regular day")
}

func TestTipTable_EveryCombinationHasATip(t *testing.T) {
	tips := DefaultTips()
	for _, f := range []signals.Flow{signals.FlowArrival, signals.FlowDeparture, signals.FlowHigh, signals.FlowMedium, signals.FlowStandard} {
		for _, w := range []signals.Weather{signals.Sunny, signals.Cloudy, signals.Rainy} {
			for _, inflection := range []bool{false, true} {
				require.NotEmpty(t, tips.Select(f, w, inflection), "%s/%s/%v", f, w, inflection)
			}
		}
	}
}

func TestLoadTips(t *testing.T) {
	t.Run("missing directory uses built-in rules", func(t *testing.T) {
		tips, err := LoadTips(filepath.Join(t.TempDir(), "missing"))
		require.NoError(t, err)
		require.Len(t, tips.Rules(), len(builtinTips))
	})

	t.Run("loaded rules take precedence at equal specificity", func(t *testing.T) {
		dir := t.TempDir()
		writeTip(t, dir, "rain.yaml", `
name: "local-rain"
weather: "rainy"
tip: "Rain on the coast: open the covered terrace."
`)
		writeTip(t, dir, "notes.txt", "ignored")
		writeTip(t, dir, "empty.yaml", "# nothing here\n")

		tips, err := LoadTips(dir)
		require.NoError(t, err)

		rules := tips.Rules()
		require.Len(t, rules, len(builtinTips)+1)
		require.Equal(t, "local-rain", rules[0].Name)
		require.Len(t, rules[0].Fingerprint, 64)
		require.Equal(t, "Rain on the coast: open the covered terrace.", tips.Select(signals.FlowStandard, signals.Rainy, false))
	})

	t.Run("duplicate names fail", func(t *testing.T) {
		dir := t.TempDir()
		writeTip(t, dir, "a.yaml", "name: \"same\"\ntip: \"one\"\n")
		writeTip(t, dir, "b.yaml", "name: \"same\"\ntip: \"two\"\n")

		_, err := LoadTips(dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "duplicate")
	})

	t.Run("unknown flow fails", func(t *testing.T) {
		dir := t.TempDir()
		writeTip(t, dir, "a.yaml", "name: \"odd\"\nflow: \"cruise\"\ntip: \"x\"\n")

		_, err := LoadTips(dir)
		require.Error(t, err)
	})

	t.Run("empty tip text fails", func(t *testing.T) {
		dir := t.TempDir()
		writeTip(t, dir, "a.yaml", "name: \"blank\"\nweather: \"sunny\"\n")

		_, err := LoadTips(dir)
		require.Error(t, err)
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		writeTip(t, dir, "a.yaml", "name: \"x\"\ntip: \"y\"\n")

		_, err := LoadTips(filepath.Join(dir, "a.yaml"))
		require.Error(t, err)
	})
}
