package view

import "math"

// seatRingScale is the seat ring radius as a fraction of the table's
// half-width (a 280px ring on the 700px reference table).
const seatRingScale = 280.0 / 700.0

type Point struct {
	X float64
	Y float64
}

// SeatPositions places n seats evenly around the table, seat 0 at the top
// and later seats proceeding clockwise. Coordinates are fractions of the
// table's bounding box; the presenter subtracts half the seat box size to
// center each seat on its point. No per-count special cases.
func SeatPositions(n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		deg := float64(i)*(360.0/float64(n)) - 90.0
		rad := deg * math.Pi / 180.0
		pts[i] = Point{
			X: 0.5 + seatRingScale*math.Cos(rad),
			Y: 0.5 + seatRingScale*math.Sin(rad),
		}
	}
	return pts
}
