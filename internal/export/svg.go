// Package export renders recorded runs as SVG images: the rocket's
// trajectory over the planets' orbit traces, sun at the origin.
package export

import (
	"fmt"
	"strings"

	"github.com/nvoss/sundiver/internal/geom"
)

// Path is one polyline with a stroke color.
type Path struct {
	Points []geom.Vec2
	Color  string
}

// TrajectorySVG renders the paths into one SVG document. Bounds are
// computed over all paths with 10% padding; y points up.
func TrajectorySVG(paths []Path, width, height int) string {
	var all []geom.Vec2
	for _, p := range paths {
		all = append(all, p.Points...)
	}
	if len(all) < 2 {
		return ""
	}

	minX, maxX := all[0].X, all[0].X
	minY, maxY := all[0].Y, all[0].Y
	for _, p := range all {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
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
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	project := func(p geom.Vec2) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, path := range paths {
		if len(path.Points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, path.Color))
		for i, p := range path.Points {
			x, y := project(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	// Sun marker at the world origin.
	sx, sy := project(geom.Vec2{})
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="#ffcc00"/>`, sx, sy))
	sb.WriteString("\n</svg>")
	return sb.String()
}

// RunPaths builds trajectory paths from recorded telemetry rows
// (columns: time, rocket x/y, rocket vx/vy, angle, state, then x/y
// per planet).
func RunPaths(rows [][]float64, numPlanets int) []Path {
	rocket := Path{Color: "#ffffff"}
	planets := make([]Path, numPlanets)
	planetColors := []string{"#00ccff", "#00ff88", "#ff88ff", "#ffaa00"}
	for i := range planets {
		planets[i].Color = planetColors[i%len(planetColors)]
	}

	for _, row := range rows {
		if len(row) < 7 {
			continue
		}
		rocket.Points = append(rocket.Points, geom.Vec2{X: row[1], Y: row[2]})
		for i := 0; i < numPlanets; i++ {
			xi := 7 + i*2
			if xi+1 < len(row) {
				planets[i].Points = append(planets[i].Points, geom.Vec2{X: row[xi], Y: row[xi+1]})
			}
		}
	}

	paths := planets
	paths = append(paths, rocket)
	return paths
}
