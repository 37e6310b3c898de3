package shape

import "math"

// NoEdge is returned for points outside a shape's drawable region.
const NoEdge = 99.0

// EdgeFunc returns the distance from (dx, dy) to the shape outline at tick.
type EdgeFunc func(dx, dy float64, tick int) float64

// Center converts grid cell (x, y) into coordinates relative to (cx, cy),
// compressing the horizontal axis by 2.
func Center(x, y int, cx, cy float64) (dx, dy float64) {
	return (float64(x) - cx) / 2, float64(y) - cy
}

// Circle is a single ring whose radius pulses between 5 and 9.
func Circle(dx, dy float64, tick int) float64 {
	t := float64(tick)
	dist := math.Sqrt(dx*dx + dy*dy)
	radius := math.Sin(t*0.15)*2 + 7
	return math.Abs(dist - radius)
}

// Ripples draws concentric rings travelling outward, clipped to radius 10.
func Ripples(dx, dy float64, tick int) float64 {
	t := float64(tick)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 10 {
		return NoEdge
	}
	wave := math.Sin(dist*1.2-t*0.25)*0.5 + 0.5
	if wave > 0.55 {
		return (1 - wave) * 3
	}
	return NoEdge
}

const starPoints = 5

// Star is a rotating five-point outline with breathing inner and outer radii.
func Star(dx, dy float64, tick int) float64 {
	t := float64(tick)
	dist := math.Sqrt(dx*dx + dy*dy)
	outerR := math.Sin(t*0.1)*1.5 + 8
	innerR := math.Sin(t*0.15+1)*1.5 + 3.5
	rotation := t * 0.04

	angle := math.Atan2(dy, dx) + rotation
	sector := math.Mod(math.Mod(angle, 2*math.Pi)+2*math.Pi, 2*math.Pi)
	slice := 2 * math.Pi / starPoints
	half := slice / 2
	inSlice := math.Mod(sector, slice)

	var k float64
	if inSlice < half {
		k = inSlice / half
	} else {
		k = (slice - inSlice) / half
	}
	edgeR := innerR + (outerR-innerR)*k
	return math.Abs(dist - edgeR)
}

// Sequence is the fixed morphing order.
var Sequence = []EdgeFunc{Circle, Ripples, Star}

// Blend linearly mixes two edge distances; blend 0 yields a, 1 yields b.
func Blend(a, b, blend float64) float64 {
	return a*(1-blend) + b*blend
}
