package state

import (
	"log/slog"
	"maps"
	"slices"
)

// Route is one candidate path toward a destination network.
type Route struct {
	Path      Path    `yaml:"path"`
	ComeFrom  Role    `yaml:"come_from"`
	LocalPref int     `yaml:"LocPrf"`
	ASPA      Verdict `yaml:"aspv,omitempty"`
	ISec      Verdict `yaml:"isec_v,omitempty"`
}

func (r Route) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", r.Path.String()),
		slog.String("come_from", r.ComeFrom.String()),
		slog.Int("LocPrf", r.LocalPref),
		slog.String("aspv", r.ASPA.String()),
		slog.String("isec", r.ISec.String()),
	)
}

// RouteEntry is a stored route together with its best-path flag.
type RouteEntry struct {
	Route `yaml:",inline"`
	Best  bool `yaml:"best_path"`
}

// Announcement is emitted when a route becomes the best path of a table.
type Announcement struct {
	ComeFrom Role
	Path     Path
	Network  Network
}

// RouteSet holds every route ever received for one network. Routes are only
// appended; the selected route is referenced by index.
type RouteSet struct {
	routes []Route
	best   int // -1 when no route is selected
}

func NewRouteSet() *RouteSet {
	return &RouteSet{best: -1}
}

// Append stores r and returns its index. The selection is left unchanged.
func (rs *RouteSet) Append(r Route) int {
	rs.routes = append(rs.routes, r)
	return len(rs.routes) - 1
}

// Select makes the route at idx the best route, demoting the previous one.
func (rs *RouteSet) Select(idx int) {
	if idx < 0 || idx >= len(rs.routes) {
		panic("route index out of range")
	}
	rs.best = idx
}

func (rs *RouteSet) Best() (Route, bool) {
	if rs.best < 0 {
		return Route{}, false
	}
	return rs.routes[rs.best], true
}

func (rs *RouteSet) BestIndex() int {
	return rs.best
}

func (rs *RouteSet) Len() int {
	return len(rs.routes)
}

// Entries returns copies of all stored routes flagged with their selection.
func (rs *RouteSet) Entries() []RouteEntry {
	out := make([]RouteEntry, len(rs.routes))
	for i, r := range rs.routes {
		out[i] = RouteEntry{Route: r, Best: i == rs.best}
	}
	return out
}

// RoutingTable maps destination networks to their candidate routes.
type RoutingTable struct {
	sets map[Network]*RouteSet
}

// NewRoutingTable creates a table holding the self-origin route of own.
func NewRoutingTable(own Network) *RoutingTable {
	t := &RoutingTable{sets: make(map[Network]*RouteSet)}
	rs := t.Set(own)
	rs.Select(rs.Append(SelfRoute()))
	return t
}

// SelfRoute is the entry an AS holds for its own network.
func SelfRoute() Route {
	return Route{
		Path:      SelfPath(),
		ComeFrom:  Customer,
		LocalPref: SelfLocalPref,
	}
}

// Set returns the route set of n, creating it when missing.
func (t *RoutingTable) Set(n Network) *RouteSet {
	rs, ok := t.sets[n]
	if !ok {
		rs = NewRouteSet()
		t.sets[n] = rs
	}
	return rs
}

// Lookup returns the route set of n without creating it.
func (t *RoutingTable) Lookup(n Network) (*RouteSet, bool) {
	rs, ok := t.sets[n]
	return rs, ok
}

// Networks returns every tracked network in lexical order.
func (t *RoutingTable) Networks() []Network {
	return slices.Sorted(maps.Keys(t.sets))
}

// BestRoutes returns the selected route of every network that has one.
func (t *RoutingTable) BestRoutes() map[Network]Route {
	out := make(map[Network]Route, len(t.sets))
	for n, rs := range t.sets {
		if r, ok := rs.Best(); ok {
			out[n] = r
		}
	}
	return out
}

// Reset drops every route set. Used when a table is restored from a document.
func (t *RoutingTable) Reset() {
	t.sets = make(map[Network]*RouteSet)
}
