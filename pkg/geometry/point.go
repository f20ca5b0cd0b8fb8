package geometry

import "math"

// Radius of earth in kilometers
const earthRadius = 6371.0

// Point is a geographic location given in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewPoint(lat, lon float64) Point {
	return Point{Lat: lat, Lon: lon}
}

func Deg2Rad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Haversine returns the great circle distance between p and q in kilometers.
func (p Point) Haversine(q Point) float64 {
	lat1 := Deg2Rad(p.Lat)
	lon1 := Deg2Rad(p.Lon)
	lat2 := Deg2Rad(q.Lat)
	lon2 := Deg2Rad(q.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * earthRadius * math.Asin(math.Sqrt(a))
}
