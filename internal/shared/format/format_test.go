package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "$0.00"},
		{"NaN", f64(math.NaN()), "$0.00"},
		{"positive infinity", f64(math.Inf(1)), "$0.00"},
		{"zero", f64(0), "$0.00"},
		{"plain", f64(42.5), "$42.50"},
		{"grouped thousands", f64(1234.56), "$1,234.56"},
		{"grouped millions", f64(1234567.891), "$1,234,567.89"},
		{"negative", f64(-12.3), "$-12.30"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Currency(tt.in))
		})
	}
}

func TestPercentAndSignedSibling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         *float64
		wantPlain  string
		wantSigned string
	}{
		{"nil", nil, "0.00%", "0.00%"},
		{"NaN", f64(math.NaN()), "0.00%", "0.00%"},
		{"positive", f64(12.345), "12.35%", "+12.35%"},
		{"negative", f64(-5.67), "-5.67%", "-5.67%"},
		// Zero gets the plus in the signed variant; the unsigned variant
		// never adds one. The asymmetry is deliberate.
		{"zero", f64(0), "0.00%", "+0.00%"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantPlain, Percent(tt.in))
			assert.Equal(t, tt.wantSigned, ChangePercent(tt.in))
		})
	}
}

func TestChange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00", Change(nil))
	assert.Equal(t, "+12.34", Change(f64(12.34)))
	assert.Equal(t, "-5.67", Change(f64(-5.67)))
	assert.Equal(t, "+0.00", Change(f64(0)))
}

func TestMarketCap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "$0"},
		{"NaN", f64(math.NaN()), "$0"},
		{"trillions", f64(1_500_000_000_000), "$1.50T"},
		{"billions", f64(2_300_000_000), "$2.30B"},
		{"millions", f64(45_600_000), "$45.60M"},
		{"thousands", f64(12_345), "$12.35K"},
		{"under a thousand", f64(999.99), "$999.99"},
		{"zero", f64(0), "$0.00"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MarketCap(tt.in))
		})
	}
}

func TestVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "0"},
		{"NaN", f64(math.NaN()), "0"},
		{"trillions", f64(2_100_000_000_000), "2.10T"},
		{"billions", f64(1_234_000_000), "1.23B"},
		{"millions", f64(45_600_000), "45.60M"},
		{"thousands", f64(5_500), "5.50K"},
		{"under a thousand", f64(999), "999"},
		{"fraction truncated before scaling", f64(999.9), "999"},
		{"zero", f64(0), "0"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Volume(tt.in))
		})
	}
}

func TestShortenNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", ShortenNumber(nil))
	assert.Equal(t, "1.2M", ShortenNumber(f64(1_230_000)))
	assert.Equal(t, "-345.0K", ShortenNumber(f64(-345_000)))
	assert.Equal(t, "42", ShortenNumber(f64(42.4)))
}

func TestNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Number(nil))
	assert.Equal(t, "1,234,567", Number(i64(1234567)))
	assert.Equal(t, "42", Number(i64(42)))
}

func TestDates(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC)
	zero := time.Time{}

	assert.Equal(t, "Nov 18, 2025", DateLong(&d))
	assert.Equal(t, "Nov 18", DateShort(&d))
	assert.Equal(t, "N/A", DateLong(nil))
	assert.Equal(t, "N/A", DateShort(nil))
	assert.Equal(t, "N/A", DateLong(&zero))
}

func TestWireFormats(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 11, 18, 14, 30, 15, 999, time.UTC)
	assert.Equal(t, "2025-11-18T14:30:15Z", Timestamp(ts))
	assert.Equal(t, "2025-11-18", DateKey(ts))

	// Non-UTC wall clocks normalize to UTC before formatting.
	jst := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2025-11-18T15:00:00Z", Timestamp(time.Date(2025, 11, 19, 0, 0, 0, 0, jst)))
}
