package export

import (
	"strings"
	"testing"

	"github.com/coresim/pwrsim/internal/core"
)

func TestTrajectorySVG(t *testing.T) {
	records := []core.Record{
		{T: 0, P: 1.0, Tf: 895, Tc: 595},
		{T: 1, P: 0.5, Tf: 880, Tc: 592},
		{T: 2, P: 0.1, Tf: 850, Tc: 588},
	}

	svg := TrajectorySVG(records, SeriesPower, 800, 400, "#00ff00")
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<path") {
		t.Error("missing svg or path element")
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Error("stroke color not applied")
	}
}

func TestTrajectorySVGSeries(t *testing.T) {
	records := []core.Record{
		{T: 0, P: 1.0, Tf: 895, Tc: 595, Rho: 0, Rod: 0.6},
		{T: 1, P: 0.5, Tf: 880, Tc: 592, Rho: -0.01, Rod: 0.4},
	}
	for _, s := range []Series{SeriesPower, SeriesFuelT, SeriesCoolT, SeriesRho, SeriesRodPos} {
		if svg := TrajectorySVG(records, s, 100, 100, "#fff"); svg == "" {
			t.Errorf("series %q produced no output", s)
		}
	}
}

func TestTrajectorySVGTooFewRecords(t *testing.T) {
	if svg := TrajectorySVG(nil, SeriesPower, 800, 400, "#fff"); svg != "" {
		t.Error("empty input produced output")
	}
	one := []core.Record{{T: 0, P: 1}}
	if svg := TrajectorySVG(one, SeriesPower, 800, 400, "#fff"); svg != "" {
		t.Error("single record produced output")
	}
}
