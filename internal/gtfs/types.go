package gtfs

// Stop represents a row of stops.txt
type Stop struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// Route represents a row of routes.txt
type Route struct {
	ID       string
	LongName string
}

// Trip represents a row of trips.txt
type Trip struct {
	ID      string
	RouteID string
	ShapeID string
}

// StopTime represents a row of stop_times.txt
type StopTime struct {
	TripID   string
	StopID   string
	Sequence int
}

// ShapePoint represents a row of shapes.txt
type ShapePoint struct {
	Lat      float64
	Lon      float64
	Sequence int
}

// Feed holds the parsed static GTFS tables of one transit feed.
type Feed struct {
	Stops     []Stop
	Routes    []Route
	Trips     []Trip
	StopTimes []StopTime
	Shapes    map[string][]ShapePoint // keyed by shape_id, sorted by sequence
}
