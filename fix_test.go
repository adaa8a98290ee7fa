package main

import (
	"encoding/json"
	"testing"
)

//
// A representative live-fix document, as locationd emits them.
//
func TestFixDecode(t *testing.T) {

	blob := []byte(`{"mode": 3, "time": "2019-10-07T18:02:17.000Z", "lat": 47.674988, "lon": -122.387045, "alt": 98.2, "speed": 0.034, "climb": 0.0, "magdec": 15.4}`)

	var fix Fix
	if err := json.Unmarshal(blob, &fix); err != nil {
		t.Fatalf("failed to decode: %s", err)
	}

	if fix.Mode != 3 {
		t.Errorf("mode %d, wanted 3", fix.Mode)
	}
	if fix.Time != "2019-10-07T18:02:17.000Z" {
		t.Errorf("time %q was mangled", fix.Time)
	}
	if fix.Lat != 47.674988 || fix.Lon != -122.387045 {
		t.Errorf("position (%v, %v) was mangled", fix.Lat, fix.Lon)
	}
	if fix.MagDec != 15.4 {
		t.Errorf("magdec %v, wanted 15.4", fix.MagDec)
	}
}

//
// Before the first live fix the daemon serves cached state: mode -1
// and "?" for the time.  That must still decode.
//
func TestFixDecodeCached(t *testing.T) {

	blob := []byte(`{"mode": -1, "time": "?", "lat": 47.6, "lon": -122.3, "alt": 98, "speed": 0.0, "climb": 0.0}`)

	var fix Fix
	if err := json.Unmarshal(blob, &fix); err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	if fix.Mode != -1 || fix.Time != "?" {
		t.Errorf("cached state decoded as mode=%d time=%q", fix.Mode, fix.Time)
	}
}

//
// Almanac documents carry illum only for bodies which show phases;
// both forms must decode.
//
func TestAlmanacDecode(t *testing.T) {

	moon := []byte(`{"name": "Moon", "alt": 34.121, "azm": 210.872, "dist": 238855.003, "illum": 62.4}`)

	var alm Almanac
	if err := json.Unmarshal(moon, &alm); err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	if alm.Name != "Moon" {
		t.Errorf("name %q, wanted Moon", alm.Name)
	}
	if alm.Azm != 210.872 {
		t.Errorf("azm %v was mangled", alm.Azm)
	}
	if alm.Illum != 62.4 {
		t.Errorf("illum %v, wanted 62.4", alm.Illum)
	}

	mars := []byte(`{"name": "Mars", "alt": -12.035, "azm": 88.441, "dist": 140051202.77}`)

	alm = Almanac{}
	if err := json.Unmarshal(mars, &alm); err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	if alm.Name != "Mars" || alm.Dist != 140051202.77 {
		t.Errorf("decoded as name=%q dist=%v", alm.Name, alm.Dist)
	}
	if alm.Illum != 0 {
		t.Errorf("illum %v, wanted 0 when absent", alm.Illum)
	}
}

func TestTimeInfoDecode(t *testing.T) {

	blob := []byte(`{"utc": "18:02:17", "local": "11:02:17", "solar": "10:53:41", "timezone": "PDT", "jdate": 2458764.25158, "gmst": "19:04:22", "lmst": "10:54:49", "doy": 280}`)

	var ti TimeInfo
	if err := json.Unmarshal(blob, &ti); err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	if ti.UTC != "18:02:17" || ti.Local != "11:02:17" {
		t.Errorf("clocks decoded as utc=%q local=%q", ti.UTC, ti.Local)
	}
	if ti.TimeZone != "PDT" {
		t.Errorf("timezone %q, wanted PDT", ti.TimeZone)
	}
	if ti.JDate != 2458764.25158 {
		t.Errorf("jdate %v was mangled", ti.JDate)
	}
	if ti.DOY != 280 {
		t.Errorf("doy %d, wanted 280", ti.DOY)
	}
}

func TestModeName(t *testing.T) {

	cases := map[int]string{
		-1: "cached",
		0:  "no fix",
		1:  "no fix",
		2:  "2D fix",
		3:  "3D fix",
	}

	for mode, want := range cases {
		if got := ModeName(mode); got != want {
			t.Errorf("ModeName(%d) = %q, wanted %q", mode, got, want)
		}
	}
}
