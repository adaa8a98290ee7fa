package main

// Fix is the document locationd returns for the "gps" selector.
//
// The gateway itself never parses these - replies are relayed as
// opaque bytes - but our own client-commands (watch, publish) want the
// fields, so the schema lives here.
//
// Mode is the fix-quality as reported by gpsd: 0/1 no fix, 2 a 2D fix,
// 3 a 3D fix.  The daemon uses -1 for values restored from its cache
// before the first live fix arrives.
type Fix struct {
	Mode   int     `json:"mode"`
	Time   string  `json:"time"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Alt    float64 `json:"alt"`
	Speed  float64 `json:"speed"`
	Climb  float64 `json:"climb"`
	MagDec float64 `json:"magdec"`
}

// ModeName gives a human-readable label for a fix-mode.
func ModeName(mode int) string {
	switch mode {
	case -1:
		return "cached"
	case 2:
		return "2D fix"
	case 3:
		return "3D fix"
	default:
		return "no fix"
	}
}

// Almanac is the document returned for the sun, moon and planet
// selectors: where the body is in the sky right now.
//
// Illum is only present for bodies which show phases.
type Almanac struct {
	Name  string  `json:"name"`
	Alt   float64 `json:"alt"`
	Azm   float64 `json:"azm"`
	Dist  float64 `json:"dist"`
	Illum float64 `json:"illum"`
}

// TimeInfo is the document returned for the "time" selector.
type TimeInfo struct {
	UTC      string  `json:"utc"`
	Local    string  `json:"local"`
	Solar    string  `json:"solar"`
	TimeZone string  `json:"timezone"`
	JDate    float64 `json:"jdate"`
	GMST     string  `json:"gmst"`
	LMST     string  `json:"lmst"`
	DOY      int     `json:"doy"`
}
