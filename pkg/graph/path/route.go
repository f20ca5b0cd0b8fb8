package path

// Route is the human-facing form of a computed path: the stations in visiting
// order and the lines used, with consecutive duplicate lines collapsed. A line
// change happens exactly where the recorded line differs from the previous one.
type Route struct {
	Stations []string `json:"route"`
	Lines    []string `json:"lines"`
}

// Exists distinguishes "no path" from a single-station route (origin equals
// destination), which has one station and no lines.
func (r Route) Exists() bool {
	return len(r.Stations) > 0
}

// FormatRoute compresses a raw step list into a Route. An empty step list
// yields the zero Route.
func FormatRoute(steps []Step) Route {
	if len(steps) == 0 {
		return Route{}
	}

	route := Route{
		Stations: make([]string, 0, len(steps)),
		Lines:    make([]string, 0),
	}
	for i, step := range steps {
		route.Stations = append(route.Stations, step.Station)
		if i == len(steps)-1 {
			// the final step carries no line
			break
		}
		if len(route.Lines) == 0 || route.Lines[len(route.Lines)-1] != step.Line {
			route.Lines = append(route.Lines, step.Line)
		}
	}
	return route
}
