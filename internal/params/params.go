// Package params maps a normalized pad position to the high/low pass
// parameter groups shown next to the pad.
package params

import "math"

// Group holds the three display values of one filter group, in percent
// rounded to one decimal place.
type Group struct {
	Volume        float64
	LFOSpeed      float64
	LFOModulation float64
}

// Parameters is the full mapping result.
type Parameters struct {
	High Group
	Low  Group
}

// Clamp limits v to [-1, 1].
func Clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Map converts a pad position into filter parameters. X crossfades the
// volume between the low pass (x = -1) and high pass (x = +1) groups, Y sets
// the LFO intensity (y = -1 off, y = +1 full). Each group's LFO values are
// scaled by that group's volume, so a silent group has no LFO either.
// Out of range input is clamped.
func Map(x, y float64) Parameters {
	x = Clamp(x)
	y = Clamp(y)

	lpVolume := (1 - x) / 2
	hpVolume := (1 + x) / 2

	intensity := (y + 1) / 2
	baseSpeed := intensity
	baseModulation := intensity

	return Parameters{
		High: group(hpVolume, baseSpeed, baseModulation),
		Low:  group(lpVolume, baseSpeed, baseModulation),
	}
}

func group(volume, speed, modulation float64) Group {
	return Group{
		Volume:        percent(volume),
		LFOSpeed:      percent(speed * volume),
		LFOModulation: percent(modulation * volume),
	}
}

func percent(v float64) float64 {
	return math.Round(v*1000) / 10
}
