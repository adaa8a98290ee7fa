package main

import "math"

//
// The sixteen compass-point names, clockwise from north.
//
var compassNames = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DirectionFromAngle converts an angle in degrees, like 33.12, into a
// compass-name, like "NNE".
//
// Angles are folded into 0-360 first, so -90 gives "W" and 700 gives
// "NNW".  Each name owns a 22.5-degree segment centred on its heading,
// and an angle landing exactly on a segment-boundary rounds to the
// even segment - 11.25 is still "N", while 33.75 is already "NE".
func DirectionFromAngle(ang float64) string {
	nsegs := float64(len(compassNames))
	segSize := 360 / nsegs

	ang = math.Mod(ang, 360)
	if ang < 0 {
		ang += 360
	}

	seg := int(math.RoundToEven(ang/segSize)) % len(compassNames)
	return compassNames[seg]
}
