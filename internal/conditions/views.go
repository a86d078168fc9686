package conditions

import (
	"fmt"
	"math"
	"time"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/recommend"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
	"github.com/shorecast/shorecast/internal/timeslot"
)

// TideTimes carries the display times of the selected high and low water.
type TideTimes struct {
	High string `json:"high"`
	Low  string `json:"low"`
}

// RecommendationView is the serialised engine verdict.
type RecommendationView struct {
	Status  recommend.Status   `json:"status"`
	Label   string             `json:"statusText"`
	Text    string             `json:"recommendation"`
	Clauses []recommend.Clause `json:"clauses"`
}

func recommendationView(rec recommend.Recommendation) RecommendationView {
	return RecommendationView{
		Status:  rec.Status,
		Label:   rec.Label,
		Text:    rec.Text(),
		Clauses: rec.Clauses,
	}
}

// Conditions is the single-beach response.
type Conditions struct {
	Beach          string             `json:"beach"`
	Location       string             `json:"location"`
	Mode           recommend.Mode     `json:"mode"`
	SeaTemp        *float64           `json:"seaTemp"`
	WaveHeight     float64            `json:"waveHeight"`
	Tide           TideTimes          `json:"tide"`
	AirTemp        *float64           `json:"airTemp"`
	FeelsLike      *float64           `json:"feelsLike"`
	WindSpeed      float64            `json:"windSpeed"`
	UVIndex        float64            `json:"uvIndex"`
	Sewage         sewage.Report      `json:"sewage"`
	Sunrise        string             `json:"sunrise"`
	Sunset         string             `json:"sunset"`
	Recommendation RecommendationView `json:"recommendation"`
}

// WavesView is present on dashboard cards in swimming mode only.
type WavesView struct {
	HeightDisplay string `json:"heightDisplay"`
}

// WeatherView carries pre-formatted air readings for cards.
type WeatherView struct {
	AirTempDisplay   string  `json:"airTempDisplay"`
	FeelsLikeDisplay string  `json:"feelsLikeDisplay"`
	UVIndex          float64 `json:"uvIndex"`
}

// SunView carries sun times and whether to badge them.
type SunView struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	ShowSunriseBadge bool   `json:"showSunriseBadge"`
	ShowSunsetBadge  bool   `json:"showSunsetBadge"`
}

// Alerts groups the auxiliary warnings shown on a card.
type Alerts struct {
	Jellyfish           bool    `json:"jellyfish"`
	JellyfishSpecies    *string `json:"jellyfishSpecies"`
	RecentRainfall      bool    `json:"recentRainfall"`
	BathingWaterQuality string  `json:"bathingWaterQuality"`
}

// Card is one beach on the dashboard.
type Card struct {
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Location       string             `json:"location"`
	Facing         beach.Facing       `json:"facing"`
	SeaTempDisplay string             `json:"seaTempDisplay"`
	Waves          *WavesView         `json:"waves"`
	Tide           TideTimes          `json:"tide"`
	Weather        WeatherView        `json:"weather"`
	Sewage         sewage.Report      `json:"sewage"`
	Sun            SunView            `json:"sun"`
	Alerts         Alerts             `json:"alerts"`
	Recommendation RecommendationView `json:"recommendation"`
	IsForecast     bool               `json:"isForecast"`
}

// Meta describes the slot and mode a dashboard was built for.
type Meta struct {
	Slot               timeslot.Slot     `json:"time"`
	Label              string            `json:"timeLabel"`
	Mode               recommend.Mode    `json:"mode"`
	IsForecast         bool              `json:"isForecast"`
	UpdatedAt          time.Time         `json:"updatedAt"`
	AvailableTimeSlots []timeslot.Option `json:"availableTimeSlots"`
}

// Dashboard is the multi-beach response.
type Dashboard struct {
	Meta    Meta   `json:"meta"`
	Beaches []Card `json:"beaches"`
}

func tideTimes(w tide.Window) TideTimes {
	return TideTimes{High: w.High.Display, Low: w.Low.Display}
}

func degreesDisplay(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%d°C", int(math.Round(*v)))
}

func wavesDisplay(height float64) string {
	if height == 0 {
		return "—"
	}
	return fmt.Sprintf("%.1fm", height)
}
