// Package telemetry aggregates per-frame simulation reports into fixed
// windows and writes them out as CSV for headless runs.
package telemetry

import "github.com/vovakirdan/snaketris/internal/games/snaketris/sim"

// WindowStats summarizes one window of frames.
type WindowStats struct {
	Window       int    `csv:"window"`
	EndFrame     uint64 `csv:"end_frame"`
	Snakes       int    `csv:"snakes"`
	Blocks       int    `csv:"blocks"`
	Dead         int    `csv:"dead"`
	Settled      int    `csv:"settled"`
	Foods        int    `csv:"foods"`
	Meals        int    `csv:"meals"`
	Crashes      int    `csv:"crashes"`
	Landings     int    `csv:"landings"`
	LinesCleared int    `csv:"lines_cleared"`
	PlayerScore  int    `csv:"player_score"`
	PlayerLength int    `csv:"player_length"`
	TopScore     int    `csv:"top_score"`
	TopName      string `csv:"top_name"`
}

// Collector accumulates frame reports until the window closes.
type Collector struct {
	size   uint64
	window int
	frames uint64

	meals, crashes, landings, lines int
}

// NewCollector creates a collector that closes a window every size frames.
func NewCollector(size uint64) *Collector {
	return &Collector{size: max(size, 1)}
}

// Record adds one frame's report. It returns true when the window is full
// and Flush should be called.
func (c *Collector) Record(r sim.Report) bool {
	c.frames++
	c.meals += len(r.Meals)
	c.crashes += len(r.Crashed)
	c.landings += len(r.Landed)
	c.lines += r.LinesCleared
	return c.frames >= c.size
}

// Flush closes the current window, sampling the world's population, and
// starts a new one.
func (c *Collector) Flush(w *sim.World) WindowStats {
	s := WindowStats{
		Window:       c.window,
		EndFrame:     w.Frame(),
		Settled:      w.SettledCells(),
		Meals:        c.meals,
		Crashes:      c.crashes,
		Landings:     c.landings,
		LinesCleared: c.lines,
	}
	for _, a := range w.Actors() {
		switch {
		case a.Phase == sim.Dead:
			s.Dead++
		case a.Kind == sim.KindBlock:
			s.Blocks++
		default:
			s.Snakes++
		}
	}
	for _, f := range w.Foods() {
		if f.Placed {
			s.Foods++
		}
	}
	p := w.Player()
	s.PlayerScore = p.Score
	s.PlayerLength = p.Len()
	if top := w.Scoreboard(1); len(top) > 0 {
		s.TopScore = top[0].Score
		s.TopName = top[0].Name
	}

	c.window++
	c.frames = 0
	c.meals, c.crashes, c.landings, c.lines = 0, 0, 0, 0
	return s
}

// Pending reports whether frames were recorded since the last flush.
func (c *Collector) Pending() bool {
	return c.frames > 0
}
