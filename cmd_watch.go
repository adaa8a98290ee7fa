//
// Watch locationd in a small terminal dashboard.
//
// The gps, time and sun selectors are polled on an interval and the
// decoded replies rendered with termui.  Press 'q' to leave.
//
// If the daemon stops answering the panels say so, and the watcher
// keeps polling until it comes back.
//

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/google/subcommands"
)

//
// watchCmd is the structure for this sub-command.
//
type watchCmd struct {
	// Where locationd is listening.
	daemonAddress string

	// How long a complete exchange may take.
	timeout time.Duration

	// How often to poll the daemon.
	interval time.Duration
}

// Name returns the name of this sub-command.
func (p *watchCmd) Name() string { return "watch" }

// Synopsis returns the brief description of this sub-command
func (p *watchCmd) Synopsis() string { return "Watch locationd's state in the terminal." }

// Usage returns details of this sub-command.
func (p *watchCmd) Usage() string {
	return `watch [options]:
  Poll locationd and render the current fix, time and sun position
  in a terminal dashboard.  Press 'q' to quit.
`
}

// SetFlags configures the flags this sub-command accepts.
func (p *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.daemonAddress, "daemon", DefaultDaemonAddress, "The host:port locationd is listening upon.")
	f.DurationVar(&p.timeout, "timeout", DefaultTimeout, "The timeout for a complete daemon exchange.")
	f.DurationVar(&p.interval, "interval", 2*time.Second, "How often to poll the daemon.")
}

// fixText renders the gps-reply for the dashboard.
func fixText(reply []byte) string {
	var fix Fix
	if err := json.Unmarshal(reply, &fix); err != nil {
		return fmt.Sprintf("Bad reply: %s", err.Error())
	}
	return fmt.Sprintf("Mode  : %s\nTime  : %s\nLat   : %.6f\nLon   : %.6f\nAlt   : %.1f m\nSpeed : %.2f m/s\nClimb : %.2f m/s",
		ModeName(fix.Mode), fix.Time, fix.Lat, fix.Lon, fix.Alt, fix.Speed, fix.Climb)
}

// timeText renders the time-reply for the dashboard.
func timeText(reply []byte) string {
	var ti TimeInfo
	if err := json.Unmarshal(reply, &ti); err != nil {
		return fmt.Sprintf("Bad reply: %s", err.Error())
	}
	return fmt.Sprintf("UTC   : %s\nLocal : %s (%s)\nSolar : %s\nGMST  : %s\nLMST  : %s\nJDate : %.5f\nDOY   : %d",
		ti.UTC, ti.Local, ti.TimeZone, ti.Solar, ti.GMST, ti.LMST, ti.JDate, ti.DOY)
}

// sunText renders the sun-reply for the dashboard.
func sunText(reply []byte) string {
	var alm Almanac
	if err := json.Unmarshal(reply, &alm); err != nil {
		return fmt.Sprintf("Bad reply: %s", err.Error())
	}
	return fmt.Sprintf("Alt  : %.2f\nAzm  : %.2f (%s)\nDist : %.0f miles",
		alm.Alt, alm.Azm, DirectionFromAngle(alm.Azm), alm.Dist)
}

// Execute is the entry-point to this sub-command.
func (p *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {

	d := NewDaemon(p.daemonAddress, p.timeout)

	if err := ui.Init(); err != nil {
		fmt.Printf("Failed to initialise the terminal UI: %s\n", err.Error())
		return subcommands.ExitFailure
	}
	defer ui.Close()

	//
	// Three panels: the fix, the clocks, and the sun.
	//
	gpsBox := widgets.NewParagraph()
	gpsBox.Title = "GPS"
	gpsBox.SetRect(0, 0, 40, 10)

	timeBox := widgets.NewParagraph()
	timeBox.Title = "Time"
	timeBox.SetRect(40, 0, 80, 10)

	sunBox := widgets.NewParagraph()
	sunBox.Title = "Sun"
	sunBox.SetRect(0, 10, 40, 16)

	//
	// Poll the daemon and redraw.  Each panel fails on its own, so
	// a broken selector doesn't blank the whole display.
	//
	refresh := func() {
		if reply, err := d.Query(ctx, "gps"); err != nil {
			gpsBox.Text = fmt.Sprintf("Unreachable: %s", err.Error())
		} else {
			gpsBox.Text = fixText(reply)
		}
		if reply, err := d.Query(ctx, "time"); err != nil {
			timeBox.Text = fmt.Sprintf("Unreachable: %s", err.Error())
		} else {
			timeBox.Text = timeText(reply)
		}
		if reply, err := d.Query(ctx, "sun"); err != nil {
			sunBox.Text = fmt.Sprintf("Unreachable: %s", err.Error())
		} else {
			sunBox.Text = sunText(reply)
		}
		ui.Render(gpsBox, timeBox, sunBox)
	}
	refresh()

	events := ui.PollEvents()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case e := <-events:
			if e.Type == ui.KeyboardEvent && (e.ID == "q" || e.ID == "<C-c>") {
				return subcommands.ExitSuccess
			}
		case <-ticker.C:
			refresh()
		}
	}
}
