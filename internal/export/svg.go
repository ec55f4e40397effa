// Package export renders recorded trajectories as standalone SVG files
// for course material and run reports.
package export

import (
	"fmt"
	"strings"

	"github.com/coresim/pwrsim/internal/core"
)

// Series selects which record field is plotted against time.
type Series string

const (
	SeriesPower  Series = "p"
	SeriesFuelT  Series = "tf"
	SeriesCoolT  Series = "tc"
	SeriesRho    Series = "rho"
	SeriesRodPos Series = "rod"
)

func (s Series) value(r core.Record) float64 {
	switch s {
	case SeriesFuelT:
		return r.Tf
	case SeriesCoolT:
		return r.Tc
	case SeriesRho:
		return r.Rho
	case SeriesRodPos:
		return r.Rod
	default:
		return r.P
	}
}

// TrajectorySVG plots one series of a recorded run as an SVG path.
func TrajectorySVG(records []core.Record, series Series, width, height int, strokeColor string) string {
	if len(records) < 2 {
		return ""
	}

	minX, maxX := records[0].T, records[len(records)-1].T
	minY, maxY := series.value(records[0]), series.value(records[0])
	for _, r := range records {
		v := series.value(r)
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, r := range records {
		x := (r.T - minX) / rangeX * float64(width)
		y := float64(height) - (series.value(r)-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
