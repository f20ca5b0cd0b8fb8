package gtfs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFeedDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestReadFeed(t *testing.T) {
	dir := writeFeedDir(t, map[string]string{
		// BOM prefix and shuffled column order on purpose
		"stops.txt": "\ufeffstop_name,stop_id,stop_lat,stop_lon\n" +
			"Rajiv Chowk,1,28.6430,77.2194\n" +
			"Hauz Khas,2,28.5494,77.2001\n" +
			"broken,3,not-a-number,77.0\n",
		"routes.txt": "route_id,route_long_name\n" +
			"Y1,YELLOW_Samaypur Badli to Huda City Centre\n",
		"trips.txt": "route_id,trip_id,shape_id\n" +
			"Y1,T1,SHP1\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\n" +
			"T1,1,1\nT1,2,2\n",
		"shapes.txt": "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\n" +
			"SHP1,28.55,77.20,2\nSHP1,28.64,77.22,1\n",
	})

	feed, err := ReadFeed(dir)
	if err != nil {
		t.Fatalf("feed not parsed: %v", err)
	}
	if len(feed.Stops) != 2 {
		t.Errorf("parsed %v stops, should be 2 (malformed row skipped)", len(feed.Stops))
	}
	if feed.Stops[0].Name != "Rajiv Chowk" || feed.Stops[0].ID != "1" {
		t.Errorf("first stop is %+v, wrongly parsed", feed.Stops[0])
	}
	if len(feed.Routes) != 1 || feed.Routes[0].ID != "Y1" {
		t.Errorf("routes are %+v, wrongly parsed", feed.Routes)
	}
	if len(feed.Trips) != 1 || feed.Trips[0].ShapeID != "SHP1" {
		t.Errorf("trips are %+v, wrongly parsed", feed.Trips)
	}
	if len(feed.StopTimes) != 2 {
		t.Errorf("parsed %v stop times, should be 2", len(feed.StopTimes))
	}

	points := feed.Shapes["SHP1"]
	if len(points) != 2 {
		t.Fatalf("shape has %v points, should be 2", len(points))
	}
	if points[0].Sequence != 1 || points[1].Sequence != 2 {
		t.Errorf("shape points not sorted by sequence: %+v", points)
	}
}

func TestReadFeedMissingOptionalShapes(t *testing.T) {
	dir := writeFeedDir(t, map[string]string{
		"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\n1,A,28.6,77.2\n",
		"routes.txt":     "route_id,route_long_name\nR,RED_A to B\n",
		"trips.txt":      "route_id,trip_id\nR,T\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\nT,1,1\n",
	})

	feed, err := ReadFeed(dir)
	if err != nil {
		t.Fatalf("feed without shapes not parsed: %v", err)
	}
	if len(feed.Shapes) != 0 {
		t.Errorf("shapes are %v, should be empty", feed.Shapes)
	}
}

func TestReadFeedMissingRequiredTable(t *testing.T) {
	dir := writeFeedDir(t, map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n1,A,28.6,77.2\n",
	})
	if _, err := ReadFeed(dir); err == nil {
		t.Error("feed without routes.txt parsed, should fail")
	}
}
