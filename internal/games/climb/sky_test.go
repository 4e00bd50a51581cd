package climb

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/skyclimb/internal/config"
)

func TestIsNight(t *testing.T) {
	cfg := config.DefaultClimbConfig().Sky

	tests := []struct {
		cameraY float64
		want    bool
	}{
		{0, false},
		{-2999, false},
		{-3001, true},
		{-4000, true},
		{-6000, false},
		{-9500, true},
	}
	for _, tt := range tests {
		if got := IsNight(tt.cameraY, cfg); got != tt.want {
			t.Errorf("IsNight(%v) = %v, expected %v", tt.cameraY, got, tt.want)
		}
	}
}

func TestSkyColor(t *testing.T) {
	cfg := config.DefaultClimbConfig().Sky
	day, _ := colorful.Hex(cfg.DayColor)
	night, _ := colorful.Hex(cfg.NightColor)

	tests := []struct {
		name    string
		cameraY float64
		want    colorful.Color
	}{
		{"ground", 0, day},
		{"mid day", -1200, day},
		{"mid night", -4500, night},
		{"next day", -6600, day},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colorful.Hex(string(SkyColor(tt.cameraY, cfg)))
			if err != nil {
				t.Fatalf("SkyColor returned %v", err)
			}
			if d := got.DistanceLab(tt.want); d > 0.01 {
				t.Errorf("color %s is %v from %s", got.Hex(), d, tt.want.Hex())
			}
		})
	}
}

func TestSkyColorBlendsAtDusk(t *testing.T) {
	cfg := config.DefaultClimbConfig().Sky
	day, _ := colorful.Hex(cfg.DayColor)
	night, _ := colorful.Hex(cfg.NightColor)

	dusk, _ := colorful.Hex(string(SkyColor(-2700, cfg)))
	if dusk.DistanceLab(day) < 0.05 || dusk.DistanceLab(night) < 0.05 {
		t.Errorf("dusk color %s is not between day and night", dusk.Hex())
	}
}

func TestSkyColorBadConfig(t *testing.T) {
	cfg := config.SkyConfig{CycleHeight: 6000, DayColor: "nope", NightColor: "#zz"}
	if got := SkyColor(0, cfg); got == "" {
		t.Error("SkyColor with bad colors returned empty")
	}
}
