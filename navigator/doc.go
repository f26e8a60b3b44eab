// Package navigator ties the graph, the location catalog and the three
// search algorithms into the route-finding workflow of the campus map.
//
// A Selection reproduces the map's click flow: the first pick is the start,
// the second the destination, and a third pick starts over. Navigator.Route
// runs the chosen algorithm and returns a Route with per-leg attributes,
// totals and the text shown in the details panel.
//
// Searches are counted and timed in Prometheus under the campusnav_
// namespace.
package navigator
