package packlist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/travelkit/packing-assistant/internal/infra/profile"
	apperrors "github.com/travelkit/packing-assistant/pkg/errors"
)

func newTestService(fc *stubForecastClient) Service {
	return &service{
		forecast: fc,
		profiles: profile.Default(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBuildForecastUnreachable(t *testing.T) {
	fc := &stubForecastClient{err: errors.New("connection refused")}
	svc := newTestService(fc)

	res, err := svc.Build(context.Background(), Request{
		City:    "Berlin",
		Start:   "2025-07-01",
		End:     "2025-07-05",
		Profile: "minimal",
	})
	require.NoError(t, err)
	require.Equal(t, "Berlin", res.City)
	require.Equal(t, 4, res.Days)
	require.Equal(t, "minimal", res.Profile)
	require.Equal(t, BucketMild, res.Weather.Bucket)
	require.Nil(t, res.Weather.AvgTMax)
	require.Nil(t, res.Weather.RainProb)
	require.Contains(t, res.Uncertainty, "unreachable")

	requireItem(t, res.Items, "T-Shirts", 4)
	requireItem(t, res.Items, "Underwear", 4)
	requireItem(t, res.Items, "Socks", 4)
	requireItem(t, res.Items, "Light Jacket", 1)
	requireItem(t, res.Items, "Sun Cream", 1)

	passport := findItem(t, res.Items, "Passport/ID")
	require.True(t, passport.Critical)
	require.Equal(t, 1, passport.Qty)
}

func TestBuildWarmForecast(t *testing.T) {
	fc := &stubForecastClient{fc: Forecast{
		Summary:     "heiß",
		AvgTMax:     ptr(30.0),
		RainProb:    ptr(0.1),
		Uncertainty: "dummy climate data",
	}}
	svc := newTestService(fc)

	res, err := svc.Build(context.Background(), Request{
		City:    "Barcelona",
		Start:   "2025-07-01",
		End:     "2025-07-05",
		Profile: "minimal",
	})
	require.NoError(t, err)
	require.Equal(t, BucketWarm, res.Weather.Bucket)
	require.Equal(t, 30.0, *res.Weather.AvgTMax)
	require.Equal(t, "dummy climate data", res.Uncertainty)

	requireItem(t, res.Items, "T-Shirts", 5)
	// Warm trips still list one jacket because of the quantity floor.
	requireItem(t, res.Items, "Light Jacket", 1)
	requireNoItem(t, res.Items, "Warm Jacket")
	requireNoItem(t, res.Items, "Rain Jacket")

	require.Equal(t, "Barcelona", fc.lastCity)
	require.Equal(t, "2025-07-01", fc.lastStart)
	require.Equal(t, "2025-07-05", fc.lastEnd)
}

func TestBuildColdAndRainyForecast(t *testing.T) {
	fc := &stubForecastClient{fc: Forecast{
		Summary:  "kalt",
		AvgTMax:  ptr(5.0),
		RainProb: ptr(0.6),
	}}
	svc := newTestService(fc)

	res, err := svc.Build(context.Background(), Request{City: "Oslo", Start: "2025-11-01", End: "2025-11-04"})
	require.NoError(t, err)
	require.Equal(t, BucketCold, res.Weather.Bucket)

	// Both conditions fire independently.
	requireItem(t, res.Items, "Warm Jacket", 1)
	requireItem(t, res.Items, "Hat/Gloves", 1)
	requireItem(t, res.Items, "Rain Jacket", 1)
	requireItem(t, res.Items, "Backpack Rain Cover", 1)

	// Blank provider uncertainty is replaced with a placeholder.
	require.Equal(t, "—", res.Uncertainty)
}

func TestBuildConditionalBoundaries(t *testing.T) {
	fc := &stubForecastClient{fc: Forecast{
		Summary:  "mild",
		AvgTMax:  ptr(10.0),
		RainProb: ptr(0.4),
	}}
	svc := newTestService(fc)

	res, err := svc.Build(context.Background(), Request{City: "Bergen", Start: "2025-03-01", End: "2025-03-03"})
	require.NoError(t, err)
	// Both thresholds are inclusive.
	requireItem(t, res.Items, "Warm Jacket", 1)
	requireItem(t, res.Items, "Rain Jacket", 1)
}

func TestBuildActivities(t *testing.T) {
	fc := &stubForecastClient{err: errors.New("down")}
	svc := newTestService(fc)

	res, err := svc.Build(context.Background(), Request{
		City:       "Lisbon",
		Start:      "2025-06-01",
		End:        "2025-06-08",
		Activities: []string{"beach", "hiking"},
	})
	require.NoError(t, err)
	requireItem(t, res.Items, "Swimwear", 1)
	requireItem(t, res.Items, "Flip-Flops", 1)
	requireItem(t, res.Items, "Hiking Boots", 1)
	requireItem(t, res.Items, "Backpack Rain Cover", 1)
}

func TestBuildEndBeforeStartClampsToOneDay(t *testing.T) {
	// A reversed date range is normalized, not rejected.
	fc := &stubForecastClient{err: errors.New("down")}
	svc := newTestService(fc)

	res, err := svc.Build(context.Background(), Request{City: "Berlin", Start: "2025-07-10", End: "2025-07-05"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Days)
}

func TestBuildUnknownProfileMatchesMinimal(t *testing.T) {
	fc := &stubForecastClient{err: errors.New("down")}
	svc := newTestService(fc)

	base, err := svc.Build(context.Background(), Request{City: "Berlin", Start: "2025-07-01", End: "2025-07-05", Profile: "minimal"})
	require.NoError(t, err)
	other, err := svc.Build(context.Background(), Request{City: "Berlin", Start: "2025-07-01", End: "2025-07-05", Profile: "unknown_key"})
	require.NoError(t, err)

	require.Equal(t, base.Items, other.Items)
	require.Equal(t, "unknown_key", other.Profile)
}

func TestBuildDefaultsEmptyProfile(t *testing.T) {
	fc := &stubForecastClient{err: errors.New("down")}
	svc := newTestService(fc)

	res, err := svc.Build(context.Background(), Request{City: "Berlin", Start: "2025-07-01", End: "2025-07-02"})
	require.NoError(t, err)
	require.Equal(t, "minimal", res.Profile)
}

func TestBuildInvalidDates(t *testing.T) {
	svc := newTestService(&stubForecastClient{})

	_, err := svc.Build(context.Background(), Request{City: "Berlin", Start: "01.07.2025", End: "2025-07-05"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Build(context.Background(), Request{City: "Berlin", Start: "2025-07-01", End: "not-a-date"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestBuildEmptyCity(t *testing.T) {
	svc := newTestService(&stubForecastClient{})

	_, err := svc.Build(context.Background(), Request{City: "  ", Start: "2025-07-01", End: "2025-07-05"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestBuildIsDeterministic(t *testing.T) {
	fc := &stubForecastClient{fc: Forecast{Summary: "warm", AvgTMax: ptr(28.0), RainProb: ptr(0.2), Uncertainty: "x"}}
	svc := newTestService(fc)
	req := Request{City: "Madrid", Start: "2025-08-01", End: "2025-08-06", Activities: []string{"beach"}, Profile: "komfort"}

	first, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

type stubForecastClient struct {
	fc        Forecast
	err       error
	lastCity  string
	lastStart string
	lastEnd   string
}

func (s *stubForecastClient) Fetch(ctx context.Context, city, start, end string) (Forecast, error) {
	if s.err != nil {
		return Forecast{}, s.err
	}
	s.lastCity = city
	s.lastStart = start
	s.lastEnd = end
	return s.fc, nil
}

func ptr(v float64) *float64 {
	return &v
}

func findItem(t *testing.T, items []Item, name string) Item {
	t.Helper()
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("item %q not found in %v", name, items)
	return Item{}
}

func requireItem(t *testing.T, items []Item, name string, qty int) {
	t.Helper()
	item := findItem(t, items, name)
	require.Equal(t, qty, item.Qty, "item %q quantity", name)
}

func requireNoItem(t *testing.T, items []Item, name string) {
	t.Helper()
	for _, item := range items {
		require.NotEqual(t, name, item.Name)
	}
}
