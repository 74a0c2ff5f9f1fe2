package packlist

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/travelkit/packing-assistant/internal/infra/profile"
	apperrors "github.com/travelkit/packing-assistant/pkg/errors"
)

const (
	dateLayout = "2006-01-02"

	defaultProfile = "minimal"

	fallbackUncertainty    = "forecast service unreachable – using generic weather bucket"
	placeholderUncertainty = "—"
)

// Conditional item thresholds, matched against the collaborator numerics.
const (
	coldItemsMaxTemp = 10.0
	rainItemsMinProb = 0.4
)

// Service assembles packing lists for trips.
type Service interface {
	Build(ctx context.Context, req Request) (Result, error)
}

// ForecastClient fetches a weather summary for a destination and date range.
type ForecastClient interface {
	Fetch(ctx context.Context, city, start, end string) (Forecast, error)
}

type service struct {
	forecast ForecastClient
	profiles *profile.Registry
	logger   *slog.Logger
}

// NewService wires up the packing list domain.
func NewService(forecast ForecastClient, profiles *profile.Registry, logger *slog.Logger) Service {
	return &service{
		forecast: forecast,
		profiles: profiles,
		logger:   logger.With("component", "packlist.service"),
	}
}

func (s *service) Build(ctx context.Context, req Request) (Result, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return Result{}, apperrors.Wrap("invalid_input", "city cannot be empty", nil)
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(req.Start))
	if err != nil {
		return Result{}, apperrors.Wrap("invalid_input", "invalid start date, expected YYYY-MM-DD", err)
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(req.End))
	if err != nil {
		return Result{}, apperrors.Wrap("invalid_input", "invalid end date, expected YYYY-MM-DD", err)
	}

	days := daysBetween(start, end)
	weather, uncertainty := s.resolveWeather(ctx, city, req.Start, req.End)

	profileName := strings.TrimSpace(req.Profile)
	if profileName == "" {
		profileName = defaultProfile
	}
	factor := s.profiles.Factor(profileName)

	q := computeQuantities(days, weather.Bucket, factor)

	items := []Item{
		{Name: "Passport/ID", Qty: 1, Critical: true},
		{Name: "T-Shirts", Qty: q.TShirts},
		{Name: "Underwear", Qty: q.Underwear},
		{Name: "Socks", Qty: q.Socks},
		{Name: "Light Jacket", Qty: q.Jacket},
		// Sun cream stays in the list for cold destinations too.
		{Name: "Sun Cream", Qty: 1},
	}
	items = append(items, activityItems(req.Activities)...)
	items = append(items, conditionalItems(weather)...)

	s.logger.Info("packing list built",
		"city", city, "days", days, "bucket", weather.Bucket, "profile", profileName, "items", len(items))

	return Result{
		City:        city,
		Days:        days,
		Profile:     profileName,
		Weather:     weather,
		Items:       items,
		Uncertainty: uncertainty,
	}, nil
}

// daysBetween normalizes the trip span to at least one day. An end date
// before the start clamps to 1 instead of failing the request.
func daysBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// resolveWeather fetches the collaborator forecast and degrades to a generic
// mild bucket on any failure. Packing list generation never fails on weather.
func (s *service) resolveWeather(ctx context.Context, city, start, end string) (Weather, string) {
	fc, err := s.forecast.Fetch(ctx, city, start, end)
	if err != nil {
		s.logger.Warn("forecast unavailable, falling back", "city", city, "error", err)
		return Weather{Bucket: BucketMild}, fallbackUncertainty
	}

	uncertainty := strings.TrimSpace(fc.Uncertainty)
	if uncertainty == "" {
		uncertainty = placeholderUncertainty
	}
	return Weather{
		Bucket:   BucketForSummary(fc.Summary),
		AvgTMax:  fc.AvgTMax,
		RainProb: fc.RainProb,
	}, uncertainty
}

// conditionalItems injects cold and rain gear. Both conditions are evaluated
// independently and only fire when the collaborator supplied the numeric.
func conditionalItems(w Weather) []Item {
	var extra []Item
	if w.AvgTMax != nil && *w.AvgTMax <= coldItemsMaxTemp {
		extra = append(extra,
			Item{Name: "Warm Jacket", Qty: 1},
			Item{Name: "Hat/Gloves", Qty: 1},
		)
	}
	if w.RainProb != nil && *w.RainProb >= rainItemsMinProb {
		extra = append(extra,
			Item{Name: "Rain Jacket", Qty: 1},
			Item{Name: "Backpack Rain Cover", Qty: 1},
		)
	}
	return extra
}
