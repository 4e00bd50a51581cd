// Package chart draws PNG summaries of a ghost population: a histogram of
// markers per score band with the density curve laid over it.
package chart

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/games/climb"
)

// Layout
const (
	DefaultWidth  = 800
	DefaultHeight = 480
	margin        = 48.0
	fontSize      = 12.0
)

var (
	background = color.RGBA{0x19, 0x19, 0x70, 0xff}
	axisColor  = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	barColor   = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	minColor   = color.RGBA{0xff, 0x8c, 0x00, 0xff}
	curveColor = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	realColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Options controls the image size.
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Ghosts renders the population against its configuration.
func Ghosts(pop climb.Population, cfg config.GhostConfig, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	if len(cfg.Bands) == 0 {
		return nil, fmt.Errorf("chart: no bands configured")
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(background)
	dc.Clear()

	face, err := monoFace(fontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	counts := climb.BandCounts(pop.Fakes, cfg.Bands)
	maxCount := 1
	for i, n := range counts {
		maxCount = max(maxCount, n, cfg.Bands[i].Count)
	}

	plotW := float64(opts.Width) - 2*margin
	plotH := float64(opts.Height) - 2*margin
	baseY := margin + plotH
	slot := plotW / float64(len(cfg.Bands))

	for i, b := range cfg.Bands {
		x := margin + float64(i)*slot
		h := plotH * float64(counts[i]) / float64(maxCount)

		dc.SetColor(barColor)
		dc.DrawRectangle(x+slot*0.15, baseY-h, slot*0.7, h)
		dc.Fill()

		// Minimum for the band.
		minY := baseY - plotH*float64(b.Count)/float64(maxCount)
		dc.SetColor(minColor)
		dc.SetLineWidth(2)
		dc.DrawLine(x+slot*0.1, minY, x+slot*0.9, minY)
		dc.Stroke()

		dc.SetColor(axisColor)
		dc.DrawStringAnchored(fmt.Sprintf("%d", counts[i]), x+slot/2, baseY-h-6, 0.5, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%d-%d", b.Min, b.Max), x+slot/2, baseY+16, 0.5, 0.5)
	}

	drawCurve(dc, cfg, plotW, plotH)

	if pop.Real.Visible {
		lo, hi := cfg.Bands[0].Min, cfg.Bands[len(cfg.Bands)-1].Max
		if pop.Real.Score >= lo && pop.Real.Score <= hi {
			x := margin + scoreToX(pop.Real.Score, cfg.Bands, plotW)
			dc.SetColor(realColor)
			dc.SetDash(4, 4)
			dc.DrawLine(x, margin, x, baseY)
			dc.Stroke()
			dc.SetDash()
			dc.DrawStringAnchored(fmt.Sprintf("last %d", pop.Real.Score), x, margin-8, 0.5, 0)
		}
	}

	dc.SetColor(axisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, baseY, margin+plotW, baseY)
	dc.DrawLine(margin, margin, margin, baseY)
	dc.Stroke()
	dc.DrawString(fmt.Sprintf("%d markers", len(pop.Fakes)), margin, margin-20)

	return dc.Image(), nil
}

// drawCurve plots the acceptance probability over the band axis.
func drawCurve(dc *gg.Context, cfg config.GhostConfig, plotW, plotH float64) {
	lo, hi := cfg.Bands[0].Min, cfg.Bands[len(cfg.Bands)-1].Max
	if hi <= lo {
		return
	}
	baseY := margin + plotH

	dc.SetColor(curveColor)
	dc.SetLineWidth(2)
	const samples = 200
	for i := 0; i <= samples; i++ {
		s := lo + (hi-lo)*i/samples
		p := climb.Density(cfg.Curve, cfg.MinDensity, s)
		x := margin + scoreToX(s, cfg.Bands, plotW)
		y := baseY - p*plotH
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
}

// scoreToX maps a score onto the band axis. Each band gets an equal slot
// so the narrow low bands stay readable.
func scoreToX(score int, bands []config.Band, plotW float64) float64 {
	slot := plotW / float64(len(bands))
	for i, b := range bands {
		if score <= b.Max || i == len(bands)-1 {
			t := 0.0
			if b.Max > b.Min {
				t = float64(score-b.Min) / float64(b.Max-b.Min)
			}
			t = max(0, min(1, t))
			return (float64(i) + t) * slot
		}
	}
	return plotW
}

func monoFace(size float64) (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("chart: cannot parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// SaveGhosts renders the population and writes it to path as PNG.
func SaveGhosts(path string, pop climb.Population, cfg config.GhostConfig, opts Options) error {
	img, err := Ghosts(pop, cfg, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("chart: cannot write %s: %w", path, err)
	}
	return nil
}
