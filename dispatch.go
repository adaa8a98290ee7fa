//
// The dispatch-table.
//
// Every URL path the gateway recognizes corresponds to exactly one
// selector which locationd understands.  Paths and selectors are in
// 1:1 correspondence, but they live in different namespaces: the path
// carries a leading "/", the selector is the bare token which goes
// down the socket.
//
// The table is fixed for the lifetime of the process, and matching is
// exact and case-sensitive - there is no prefix or wildcard handling.
//

package main

// Keyword is a selector understood by locationd.
//
// The daemon accepts a small closed set of these, and answers each
// with a single JSON document.
type Keyword string

//
// pathTable maps each URL path we serve onto the selector which
// locationd expects on the wire.
//
var pathTable = map[string]Keyword{
	"/gps":     "gps",
	"/time":    "time",
	"/day":     "day",
	"/sun":     "sun",
	"/moon":    "moon",
	"/mercury": "mercury",
	"/venus":   "venus",
	"/mars":    "mars",
	"/jupiter": "jupiter",
	"/saturn":  "saturn",
	"/uranus":  "uranus",
	"/neptune": "neptune",
	"/pluto":   "pluto",
}

// LookupPath resolves an URL path into the selector to send to the
// daemon.
//
// The second return value reports whether the path was recognized at
// all; callers must handle the miss themselves, there is no default.
func LookupPath(path string) (Keyword, bool) {
	kw, ok := pathTable[path]
	return kw, ok
}
