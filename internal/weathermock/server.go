// Package weathermock serves dummy climate data in the shape the packing
// assistant expects from its forecast collaborator. It is meant for local
// development and integration testing, not as a real weather source.
package weathermock

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/travelkit/packing-assistant/internal/domain/packlist"
)

const dateLayout = "2006-01-02"

// ClimateDB maps city names to monthly climate normals.
type ClimateDB map[string]CityClimate

// CityClimate carries the monthly normals for one city, keyed "01".."12".
type CityClimate struct {
	Monthly map[string]MonthlyNormal `json:"monthly"`
}

// MonthlyNormal is a single month of averaged climate values.
type MonthlyNormal struct {
	TMin float64 `json:"tmin"`
	TMax float64 `json:"tmax"`
	Rain float64 `json:"rain"`
}

// LoadClimate reads the climate JSON file backing the mock.
func LoadClimate(path string) (ClimateDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read climate data: %w", err)
	}
	var db ClimateDB
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parse climate data: %w", err)
	}
	return db, nil
}

// Response is the wire format returned to the packing assistant.
type Response struct {
	City        string  `json:"city"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Summary     string  `json:"summary"`
	AvgTMin     float64 `json:"avg_tmin"`
	AvgTMax     float64 `json:"avg_tmax"`
	RainProb    float64 `json:"rain_prob"`
	Uncertainty string  `json:"uncertainty"`
}

// NewRouter wires the mock HTTP endpoints.
func NewRouter(db ClimateDB, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	log := logger.With("component", "weathermock")
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": "weathermock"})
	})

	router.GET("/v1/weather", func(c *gin.Context) {
		city := c.Query("city")
		start, err := time.Parse(dateLayout, c.Query("start"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start date, expected YYYY-MM-DD"})
			return
		}
		end, err := time.Parse(dateLayout, c.Query("end"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end date, expected YYYY-MM-DD"})
			return
		}

		resp := buildResponse(db, city, start, end)
		log.Debug("weather served", "city", city, "summary", resp.Summary)
		c.JSON(http.StatusOK, resp)
	})

	return router
}

// buildResponse averages the normals of the start and end months for a known
// city, or falls back to a generic seasonal bucket otherwise.
func buildResponse(db ClimateDB, city string, start, end time.Time) Response {
	resp := Response{
		City:  city,
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
	}

	if climate, ok := db[city]; ok {
		months := monthKeys(start, end)
		var tmin, tmax, rain float64
		for _, key := range months {
			normal := climate.Monthly[key]
			tmin += normal.TMin
			tmax += normal.TMax
			rain += normal.Rain
		}
		n := float64(len(months))
		resp.AvgTMin = roundTo(tmin/n, 1)
		resp.AvgTMax = roundTo(tmax/n, 1)
		resp.RainProb = roundTo(rain/n, 2)
		resp.Summary = string(packlist.BucketForTemperature(resp.AvgTMax))
		resp.Uncertainty = "dummy climate data (monthly averages)"
		return resp
	}

	resp.Summary = string(seasonalBucket(start.Month()))
	resp.RainProb = 0.30
	resp.Uncertainty = "city not in dummy data – generic seasonal bucket"
	return resp
}

func monthKeys(start, end time.Time) []string {
	keys := []string{fmt.Sprintf("%02d", int(start.Month()))}
	if end.Month() != start.Month() {
		keys = append(keys, fmt.Sprintf("%02d", int(end.Month())))
	}
	return keys
}

func seasonalBucket(month time.Month) packlist.Bucket {
	switch {
	case month >= time.June && month <= time.September:
		return packlist.BucketWarm
	case month == time.December || month <= time.February:
		return packlist.BucketCold
	default:
		return packlist.BucketMild
	}
}

func roundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
