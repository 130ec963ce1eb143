package sim

import "time"

// tickEffects runs modifier timers and refreshes every actor's move cadence.
func (w *World) tickEffects(dt time.Duration) {
	for _, a := range w.actors {
		if !a.Living() {
			continue
		}
		m := &a.Mods
		if m.Freeze > 0 {
			m.freezeLeft -= dt
			if m.freezeLeft <= 0 {
				m.Freeze = 0
				m.freezeLeft = 0
			}
		}
		if m.Invincible > 0 {
			m.Invincible = max(m.Invincible-dt, 0)
		}
		if m.Swiftness > 0 && w.opts.SwiftnessDecay > 0 {
			m.swiftAge += dt
			if m.swiftAge >= w.opts.SwiftnessDecay {
				m.Swiftness--
				m.swiftAge = 0
			}
		}
		a.Cooldown.SetPeriod(w.moveCooldown(a), w.opts.MinCooldown)
		if a.block != nil {
			a.block.fall.SetPeriod(w.fallCooldown(a), w.opts.MinCooldown)
		}
	}
}

// freeze stacks one freeze level on a, restarting its thaw timer.
func (w *World) freeze(a *Actor) {
	a.Mods.Freeze = min(a.Mods.Freeze+1, w.opts.MaxFreeze)
	a.Mods.freezeLeft = w.freezeDuration(a.Mods.Freeze)
}

func (w *World) freezeDuration(level int) time.Duration {
	return w.opts.FreezeBase + time.Duration(level)*time.Second
}

// speed returns the actor's base speed with difficulty applied to enemies.
func (w *World) speed(a *Actor) float64 {
	if a.Player || w.opts.Difficulty == nil {
		return a.Speed
	}
	return min(w.opts.Difficulty.Speed(a.Speed, w.actors[0].Score, int(w.frame)), 1)
}

// moveCooldown is the time between moves: faster actors and swiftness
// shorten it, freezing replaces it with the freeze duration.
func (w *World) moveCooldown(a *Actor) time.Duration {
	if a.Mods.Freeze > 0 {
		return w.freezeDuration(a.Mods.Freeze)
	}
	return CooldownFor(w.speed(a), a.Mods.Swiftness, w.opts.MaxCooldown, w.opts.MinCooldown)
}

func (w *World) fallCooldown(a *Actor) time.Duration {
	if a.Mods.Freeze > 0 {
		return w.freezeDuration(a.Mods.Freeze)
	}
	return w.opts.Tetris.Fall
}

// CooldownFor computes a move cooldown from a speed in [0, 1] and a
// swiftness level.
func CooldownFor(speed float64, swiftness int, maxCooldown, minCooldown time.Duration) time.Duration {
	maxMs := float64(maxCooldown.Milliseconds())
	speedTerm := speed * maxMs * 0.6
	swift := speedTerm * 0.15 * float64(swiftness)
	ms := maxMs - (speedTerm + swift)
	return max(time.Duration(ms*float64(time.Millisecond)), minCooldown)
}
