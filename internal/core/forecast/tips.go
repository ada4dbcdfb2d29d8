package forecast

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aevon-lab/pos-analytics/internal/signals"
	"gopkg.in/yaml.v3"
)

// TipRule maps a combination of signals to a recommendation. Empty Flow or
// Weather and a nil Inflection match anything.
type TipRule struct {
	Name        string
	Flow        signals.Flow
	Weather     signals.Weather
	Inflection  *bool
	Tip         string
	Fingerprint string // SHA-256 of the rule file; empty for built-in rules
}

func (r TipRule) matches(flow signals.Flow, weather signals.Weather, inflection bool) (score int, ok bool) {
	if r.Flow != "" {
		if r.Flow != flow {
			return 0, false
		}
		score++
	}
	if r.Weather != "" {
		if r.Weather != weather {
			return 0, false
		}
		score++
	}
	if r.Inflection != nil {
		if *r.Inflection != inflection {
			return 0, false
		}
		score++
	}
	return score, true
}

// TipTable selects the most specific matching rule. Among equally specific
// rules the earlier one wins; loaded rules come before the built-in ones.
type TipTable struct {
	rules []TipRule
}

func yes() *bool { v := true; return &v }

var builtinTips = []TipRule{
	{Name: "high-sunny-payday", Flow: signals.FlowHigh, Weather: signals.Sunny, Inflection: yes(),
		Tip: "Best day of the cycle: full staff all afternoon and night, restock cold drinks before noon."},
	{Name: "high-sunny", Flow: signals.FlowHigh, Weather: signals.Sunny,
		Tip: "Beach day with a full town: reinforce the afternoon shift and keep cold drinks stocked."},
	{Name: "high-rainy", Flow: signals.FlowHigh, Weather: signals.Rainy,
		Tip: "Full town stuck indoors: expect queues at midday, push hot drinks and snacks."},
	{Name: "arrival-payday", Flow: signals.FlowArrival, Inflection: yes(),
		Tip: "Arrivals with fresh wages: stock up on groceries and open every register from the afternoon."},
	{Name: "arrival", Flow: signals.FlowArrival,
		Tip: "Arrival day: most traffic lands late, prepare the evening shift and restock early."},
	{Name: "departure", Flow: signals.FlowDeparture,
		Tip: "Departure day: mornings are busy with last purchases, wind down the night shift."},
	{Name: "medium-rainy", Flow: signals.FlowMedium, Weather: signals.Rainy,
		Tip: "Rainy weekend: visitors shop indoors, highlight comfort products at the counter."},
	{Name: "standard-payday", Flow: signals.FlowStandard, Inflection: yes(),
		Tip: "Payday for residents: card payments rise, check terminals and change before opening."},
	{Name: "rainy", Weather: signals.Rainy,
		Tip: "Rain expected: traffic drops in the afternoon, use it for restocking and inventory."},
	{Name: "sunny", Weather: signals.Sunny,
		Tip: "Good weather: foot traffic peaks in the afternoon, keep the front display full."},
	{Name: "default",
		Tip: "Regular day: follow the usual staffing plan."},
}

// DefaultTips returns the built-in table.
func DefaultTips() *TipTable {
	rules := make([]TipRule, len(builtinTips))
	copy(rules, builtinTips)
	return &TipTable{rules: rules}
}

// Rules returns the rules in precedence order.
func (t *TipTable) Rules() []TipRule {
	out := make([]TipRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Select returns the tip of the most specific matching rule.
func (t *TipTable) Select(flow signals.Flow, weather signals.Weather, inflection bool) string {
	best, bestScore := -1, -1
	for i, r := range t.rules {
		score, ok := r.matches(flow, weather, inflection)
		if ok && score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return ""
	}
	return t.rules[best].Tip
}

// rawTipRule is the on-disk YAML shape.
type rawTipRule struct {
	Name       string `yaml:"name"`
	Flow       string `yaml:"flow"`
	Weather    string `yaml:"weather"`
	Inflection *bool  `yaml:"inflection"`
	Tip        string `yaml:"tip"`
}

// LoadTips builds a table from the *.yaml files in dir, one rule per file,
// followed by the built-in rules. A missing directory yields the built-in
// table.
func LoadTips(dir string) (*TipTable, error) {
	table := DefaultTips()
	if dir == "" {
		return table, nil
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return table, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tips dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tips path %q is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading tips dir: %w", err)
	}

	seen := make(map[string]bool)
	var loaded []TipRule
	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading tip file %s: %w", path, err)
		}

		var raw rawTipRule
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing tip file %s: %w", path, err)
		}
		if raw.Name == "" {
			continue // empty or comment-only file
		}

		rule, err := raw.validate()
		if err != nil {
			return nil, err
		}
		if seen[rule.Name] {
			return nil, fmt.Errorf("tip %q: duplicate rule name (check multiple YAML files)", rule.Name)
		}
		seen[rule.Name] = true

		rule.Fingerprint = fmt.Sprintf("%x", sha256.Sum256(data))
		loaded = append(loaded, rule)
	}

	table.rules = append(loaded, table.rules...)
	return table, nil
}

func (r rawTipRule) validate() (TipRule, error) {
	rule := TipRule{Name: r.Name, Inflection: r.Inflection, Tip: strings.TrimSpace(r.Tip)}
	if rule.Tip == "" {
		return TipRule{}, fmt.Errorf("tip %q: tip text must not be empty", r.Name)
	}
	if r.Flow != "" {
		f, err := signals.ParseFlow(r.Flow)
		if err != nil {
			return TipRule{}, fmt.Errorf("tip %q: %w", r.Name, err)
		}
		rule.Flow = f
	}
	if r.Weather != "" {
		w, err := signals.ParseWeather(r.Weather)
		if err != nil {
			return TipRule{}, fmt.Errorf("tip %q: %w", r.Name, err)
		}
		rule.Weather = w
	}
	return rule, nil
}
