package chart

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/meteo-grid/internal/config"
	"github.com/couchcryptid/meteo-grid/internal/domain"
)

func testSeries() domain.Series {
	s := domain.Series{Variable: "Chuvia", Year: 2010}
	for i := 0; i < 12; i++ {
		s.Values[i] = domain.Of(float64(i + 1))
	}
	// March has no data; must render distinct from a zero reading.
	s.Values[2] = domain.Value{}
	return s
}

func TestRenderer_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("writes a png", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.png")
		r := New(&config.Config{Lang: "es"}, slog.Default())

		require.NoError(t, r.Render(ctx, testSeries(), path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	})

	t.Run("all-missing series still renders", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.png")
		r := New(&config.Config{Lang: "es"}, slog.Default())

		series := domain.Series{Variable: "Chuvia", Year: 2011}
		require.NoError(t, r.Render(ctx, series, path))

		_, err := os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("unwritable destination is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-subdir", "chart.png")
		r := New(&config.Config{Lang: "es"}, slog.Default())

		err := r.Render(ctx, testSeries(), path)

		require.Error(t, err)
	})
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "5", trimFloat(5.0))
	assert.Equal(t, "5.1", trimFloat(5.1))
	assert.Equal(t, "0", trimFloat(0))
}
