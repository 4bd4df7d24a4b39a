package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

// Tick-rate bounds for the speed controls.
const (
	MinTPS = 1
	MaxTPS = 240
)

// KeyHelp lists the keyboard controls shared by every interactive front end.
const KeyHelp = "space pause · n step · r reset · s reseed · c clear · +/- speed · q quit"

// Stats is the loop state shown alongside the grid.
type Stats struct {
	Generation uint64
	Population int
	Size       core.Size
	TPS        int
	Paused     bool
	Seeder     string
}

// Lines formats s for a status panel, one field per line.
func (s Stats) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("gen    %d", s.Generation),
		fmt.Sprintf("alive  %d", s.Population),
		fmt.Sprintf("grid   %dx%d", s.Size.W, s.Size.H),
		fmt.Sprintf("tps    %d", s.TPS),
		fmt.Sprintf("seeder %s", s.Seeder),
		state,
	}
}

// StepTPS moves tps one notch up (dir > 0) or down (dir < 0). Notches are 1
// below 10, 5 below 60 and 10 above, clamped to [MinTPS, MaxTPS].
func StepTPS(tps, dir int) int {
	if dir == 0 {
		return clampTPS(tps)
	}
	probe := tps
	if dir < 0 {
		probe = tps - 1
	}
	step := 1
	switch {
	case probe >= 60:
		step = 10
	case probe >= 10:
		step = 5
	}
	if dir < 0 {
		step = -step
	}
	return clampTPS(tps + step)
}

func clampTPS(tps int) int {
	if tps < MinTPS {
		return MinTPS
	}
	if tps > MaxTPS {
		return MaxTPS
	}
	return tps
}
