package signals

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Weather is the sky condition at a location for one day.
type Weather string

const (
	Sunny  Weather = "sunny"
	Cloudy Weather = "cloudy"
	Rainy  Weather = "rainy"
)

// NeutralWeather is used whenever the weather cannot be fetched.
const NeutralWeather = Cloudy

func (w Weather) Valid() bool {
	return w == Sunny || w == Cloudy || w == Rainy
}

// ParseWeather validates a weather tag.
func ParseWeather(s string) (Weather, error) {
	w := Weather(s)
	if !w.Valid() {
		return "", fmt.Errorf("unknown weather %q", s)
	}
	return w, nil
}

// Flow classifies tourist traffic for the day.
type Flow string

const (
	FlowArrival   Flow = "arrival"
	FlowDeparture Flow = "departure"
	FlowHigh      Flow = "high"
	FlowMedium    Flow = "medium"
	FlowStandard  Flow = "standard"
)

// NeutralFlow is used whenever the flow cannot be determined.
const NeutralFlow = FlowStandard

func (f Flow) Valid() bool {
	switch f {
	case FlowArrival, FlowDeparture, FlowHigh, FlowMedium, FlowStandard:
		return true
	}
	return false
}

// ParseFlow validates a flow tag.
func ParseFlow(s string) (Flow, error) {
	f := Flow(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown tourist flow %q", s)
	}
	return f, nil
}

// WeatherProvider reports sky conditions per location.
type WeatherProvider interface {
	CurrentCondition(ctx context.Context, locationID int) (Weather, error)
	HistoricalCondition(ctx context.Context, locationID int, day time.Time) (Weather, error)
}

// FlowProvider reports the tourist flow for today.
type FlowProvider interface {
	TouristFlow(ctx context.Context) (Flow, error)
}

// CurrentConditionOrNeutral never fails: lookup errors and a nil provider
// both yield NeutralWeather.
func CurrentConditionOrNeutral(ctx context.Context, p WeatherProvider, locationID int) Weather {
	if p == nil {
		return NeutralWeather
	}
	w, err := p.CurrentCondition(ctx, locationID)
	if err != nil || !w.Valid() {
		slog.Warn("[Signals] Weather unavailable, using neutral condition",
			"location_id", locationID,
			"error", err,
			"fallback", NeutralWeather)
		return NeutralWeather
	}
	return w
}

// HistoricalConditionOrNeutral is CurrentConditionOrNeutral for a past day.
func HistoricalConditionOrNeutral(ctx context.Context, p WeatherProvider, locationID int, day time.Time) Weather {
	if p == nil {
		return NeutralWeather
	}
	w, err := p.HistoricalCondition(ctx, locationID, day)
	if err != nil || !w.Valid() {
		slog.Warn("[Signals] Historical weather unavailable, using neutral condition",
			"location_id", locationID,
			"day", day.Format("2006-01-02"),
			"error", err)
		return NeutralWeather
	}
	return w
}

// TouristFlowOrNeutral never fails: lookup errors and a nil provider both
// yield NeutralFlow.
func TouristFlowOrNeutral(ctx context.Context, p FlowProvider) Flow {
	if p == nil {
		return NeutralFlow
	}
	f, err := p.TouristFlow(ctx)
	if err != nil || !f.Valid() {
		slog.Warn("[Signals] Tourist flow unavailable, using neutral flow",
			"error", err,
			"fallback", NeutralFlow)
		return NeutralFlow
	}
	return f
}
