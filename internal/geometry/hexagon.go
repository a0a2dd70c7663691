// Package geometry computes the stat hexagon and draws it on a character grid.
package geometry

import (
	"math"

	"github.com/thesavant42/pokedex-ng/internal/models"
)

const (
	// CenterX and CenterY locate the hexagon in its 100x100 view box
	CenterX = 50.0
	CenterY = 50.0
	// Radius is the distance from the centre of a stat at maxStat
	Radius = 40.0
	// DefaultMaxStat is used when the caller passes a non-positive maximum
	DefaultMaxStat = 255
)

// Point is a vertex in the 100x100 view box. Y grows downwards.
type Point struct {
	X float64
	Y float64
}

// HexagonPoints returns one vertex per stat in models.StatOrder.
// Vertex i sits at angle 2πi/6 − π/2, so HP points straight up and the rest
// follow clockwise. Values above maxStat are not clamped.
func HexagonPoints(stats models.Stats, maxStat int) []Point {
	if maxStat <= 0 {
		maxStat = DefaultMaxStat
	}

	values := stats.Values()
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = vertex(i, float64(v)/float64(maxStat)*Radius)
	}
	return points
}

// Outline returns the reference hexagon for a stat of exactly maxStat
func Outline() []Point {
	points := make([]Point, len(models.StatOrder))
	for i := range points {
		points[i] = vertex(i, Radius)
	}
	return points
}

func vertex(i int, r float64) Point {
	angle := 2*math.Pi*float64(i)/6 - math.Pi/2
	return Point{
		X: CenterX + r*math.Cos(angle),
		Y: CenterY + r*math.Sin(angle),
	}
}
