package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aevon-lab/pos-analytics/internal/signals"
	"resty.dev/v3"
)

const (
	DefaultBaseURL    = "https://api.open-meteo.com"
	DefaultArchiveURL = "https://archive-api.open-meteo.com"

	forecastPath = "/v1/forecast"
	archivePath  = "/v1/archive"
)

// ErrUnknownLocation is returned for a location id without coordinates.
var ErrUnknownLocation = errors.New("no coordinates for location")

// Coordinates places a point of sale on the map.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ClientOptions configures Client.
type ClientOptions struct {
	BaseURL    string
	ArchiveURL string
	Timeout    time.Duration
	Timezone   string
	Locations  map[int]Coordinates
}

// Client reads weather codes from an Open-Meteo compatible API.
type Client struct {
	http       *resty.Client
	archiveURL string
	timezone   string
	locations  map[int]Coordinates
}

var _ signals.WeatherProvider = (*Client)(nil)

type currentResponse struct {
	Current struct {
		Time        string `json:"time"`
		WeatherCode *int   `json:"weather_code"`
	} `json:"current"`
}

type dailyResponse struct {
	Daily struct {
		Time        []string `json:"time"`
		WeatherCode []*int   `json:"weather_code"`
	} `json:"daily"`
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.ArchiveURL == "" {
		opts.ArchiveURL = DefaultArchiveURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	locations := make(map[int]Coordinates, len(opts.Locations))
	for id, c := range opts.Locations {
		locations[id] = c
	}

	return &Client{
		http: resty.New().
			SetBaseURL(opts.BaseURL).
			SetTimeout(opts.Timeout).
			SetHeader("Accept", "application/json"),
		archiveURL: opts.ArchiveURL,
		timezone:   opts.Timezone,
		locations:  locations,
	}
}

// Locations lists the ids the client has coordinates for.
func (c *Client) Locations() []int {
	ids := make([]int, 0, len(c.locations))
	for id := range c.locations {
		ids = append(ids, id)
	}
	return ids
}

func (c *Client) CurrentCondition(ctx context.Context, locationID int) (signals.Weather, error) {
	params, err := c.baseParams(locationID)
	if err != nil {
		return "", err
	}
	params["current"] = "weather_code"

	var out currentResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(forecastPath)
	if err != nil {
		return "", fmt.Errorf("weather request failed: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("weather request failed: status %d", res.StatusCode())
	}
	if out.Current.WeatherCode == nil {
		return "", fmt.Errorf("weather response without current weather_code")
	}

	w := FromWMO(*out.Current.WeatherCode)
	slog.Debug("[Weather] Current condition",
		"location_id", locationID,
		"code", *out.Current.WeatherCode,
		"weather", w)
	return w, nil
}

func (c *Client) HistoricalCondition(ctx context.Context, locationID int, day time.Time) (signals.Weather, error) {
	params, err := c.baseParams(locationID)
	if err != nil {
		return "", err
	}
	date := day.Format("2006-01-02")
	params["daily"] = "weather_code"
	params["start_date"] = date
	params["end_date"] = date

	var out dailyResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&out).
		Get(c.archiveURL + archivePath)
	if err != nil {
		return "", fmt.Errorf("weather archive request failed: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("weather archive request failed: status %d", res.StatusCode())
	}

	for i, t := range out.Daily.Time {
		if t != date || i >= len(out.Daily.WeatherCode) || out.Daily.WeatherCode[i] == nil {
			continue
		}
		return FromWMO(*out.Daily.WeatherCode[i]), nil
	}
	return "", fmt.Errorf("weather archive has no code for %s", date)
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) baseParams(locationID int) (map[string]string, error) {
	coords, ok := c.locations[locationID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLocation, locationID)
	}
	params := map[string]string{
		"latitude":  strconv.FormatFloat(coords.Latitude, 'f', 4, 64),
		"longitude": strconv.FormatFloat(coords.Longitude, 'f', 4, 64),
	}
	if c.timezone != "" {
		params["timezone"] = c.timezone
	}
	return params, nil
}

// FromWMO maps a WMO weather interpretation code to a sky condition.
// 0-1 clear, 2-48 clouds and fog, 51 and above any precipitation.
func FromWMO(code int) signals.Weather {
	switch {
	case code <= 1:
		return signals.Sunny
	case code < 51:
		return signals.Cloudy
	default:
		return signals.Rainy
	}
}
