package climb

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// skyFade is the fraction of a half cycle spent blending between colors.
const skyFade = 0.2

// cyclePosition returns where cameraY sits in the day/night cycle, in [0, 1).
func cyclePosition(cameraY, cycle float64) float64 {
	if cycle <= 0 {
		return 0
	}
	return math.Mod(math.Abs(cameraY), cycle) / cycle
}

// IsNight reports whether the second half of the height cycle is showing.
func IsNight(cameraY float64, cfg config.SkyConfig) bool {
	return cyclePosition(cameraY, cfg.CycleHeight) > 0.5
}

// nightAmount returns 0 for full day and 1 for full night. Each half cycle
// ends with a short fade toward the other color.
func nightAmount(pos float64) float64 {
	half := 0.5
	fadeStart := half * (1 - skyFade)
	switch {
	case pos <= half:
		return core.Clamp((pos-fadeStart)/(half-fadeStart), 0, 1)
	default:
		local := pos - half
		return 1 - core.Clamp((local-fadeStart)/(half-fadeStart), 0, 1)
	}
}

// SkyColor blends the day and night colors for a camera offset.
// Unparseable colors fall back to the built-in palette.
func SkyColor(cameraY float64, cfg config.SkyConfig) core.Color {
	day, err := colorful.Hex(cfg.DayColor)
	if err != nil {
		day, _ = colorful.Hex(string(core.ColorSkyBlue))
	}
	night, err := colorful.Hex(cfg.NightColor)
	if err != nil {
		night, _ = colorful.Hex(string(core.ColorNightBlue))
	}
	t := nightAmount(cyclePosition(cameraY, cfg.CycleHeight))
	return core.Color(day.BlendLab(night, t).Clamped().Hex())
}
