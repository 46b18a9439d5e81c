package fetch

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/orchestration"
)

// Public endpoints. Neither requires an API key.
const (
	DefaultWeatherURL    = "https://api.open-meteo.com/v1/forecast"
	DefaultRandomUserURL = "https://randomuser.me/api/"
)

// DefaultCity is used when Weather is called with an empty city.
const DefaultCity = "London"

type coordinates struct {
	lat, lon float64
}

var cities = map[string]coordinates{
	"london":   {51.5085, -0.1257},
	"paris":    {48.8534, 2.3488},
	"new york": {40.7143, -74.006},
	"tokyo":    {35.6895, 139.6917},
	"montreal": {45.5088, -73.5878},
}

// Cities lists the supported city names in sorted order.
func Cities() []string {
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WeatherReport is the subset of the open-meteo forecast used by the sampler.
type WeatherReport struct {
	City         string         `mapstructure:"-"`
	Latitude     float64        `mapstructure:"latitude"`
	Longitude    float64        `mapstructure:"longitude"`
	Timezone     string         `mapstructure:"timezone"`
	Current      CurrentWeather `mapstructure:"current"`
	CurrentUnits CurrentUnits   `mapstructure:"current_units"`
}

// CurrentWeather holds the current conditions block.
type CurrentWeather struct {
	Time        string  `mapstructure:"time"`
	Temperature float64 `mapstructure:"temperature_2m"`
	WeatherCode int     `mapstructure:"weather_code"`
	WindSpeed   float64 `mapstructure:"wind_speed_10m"`
}

// CurrentUnits holds the unit labels for CurrentWeather.
type CurrentUnits struct {
	Temperature string `mapstructure:"temperature_2m"`
	WindSpeed   string `mapstructure:"wind_speed_10m"`
}

// Weather returns an operation fetching current conditions for city.
// Unknown cities fail validation before any request is built.
func (c *Client) Weather(city string) (orchestration.Operation[WeatherReport], error) {
	if strings.TrimSpace(city) == "" {
		city = DefaultCity
	}
	coords, ok := cities[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return orchestration.Operation[WeatherReport]{}, apperrors.ValidationError{
			Field:   "city",
			Message: "unsupported city " + strconv.Quote(city),
			Detail:  "supported: " + strings.Join(Cities(), ", "),
		}
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(coords.lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,weather_code,wind_speed_10m")
	q.Set("hourly", "temperature_2m,relative_humidity_2m,wind_speed_10m")
	target := c.weatherURL + "?" + q.Encode()

	return orchestration.NewOperation("weather data", func(ctx context.Context) (WeatherReport, error) {
		var raw map[string]any
		if err := c.getJSON(ctx, target, &raw); err != nil {
			return WeatherReport{}, err
		}
		var report WeatherReport
		if err := mapstructure.Decode(raw, &report); err != nil {
			return WeatherReport{}, err
		}
		report.City = city
		return report, nil
	}), nil
}

// UserName is the name block of a random user.
type UserName struct {
	Title string `mapstructure:"title"`
	First string `mapstructure:"first"`
	Last  string `mapstructure:"last"`
}

// RandomUser is the subset of a randomuser.me result used by the sampler.
type RandomUser struct {
	Name    UserName `mapstructure:"name"`
	Email   string   `mapstructure:"email"`
	Gender  string   `mapstructure:"gender"`
	Phone   string   `mapstructure:"phone"`
	Country string   `mapstructure:"nat"`
}

// FullName joins first and last names.
func (u RandomUser) FullName() string {
	return u.Name.First + " " + u.Name.Last
}

var errNoResults = errors.New("random user response has no results")

// RandomUser returns an operation fetching one random user profile.
func (c *Client) RandomUser() orchestration.Operation[RandomUser] {
	return orchestration.NewOperation("random user data", func(ctx context.Context) (RandomUser, error) {
		var raw struct {
			Results []map[string]any `json:"results"`
		}
		if err := c.getJSON(ctx, c.randomUserURL, &raw); err != nil {
			return RandomUser{}, err
		}
		if len(raw.Results) == 0 {
			return RandomUser{}, errNoResults
		}
		var user RandomUser
		if err := mapstructure.Decode(raw.Results[0], &user); err != nil {
			return RandomUser{}, err
		}
		return user, nil
	})
}
