package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/shapes/raster"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// coveredArea rasterizes p on a w×h canvas and returns the total coverage
// in pixels.
func coveredArea(p *Path, w, h int, rule raster.Rule) float64 {
	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.Flatness = 0.01
	var total float64
	r.Fill(p.Data(0), rule, func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			total += float64(c)
		}
	})
	return total
}
