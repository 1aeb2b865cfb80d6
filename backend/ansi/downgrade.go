package ansi

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	sc "github.com/kelvinhart/stagecraft"
)

// cubeLevels is the 6-step intensity ramp xterm-256 uses for indices
// 16..231 (the 6x6x6 color cube).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// downgradeToXterm256 projects an RGB color onto the 256-color palette:
// achromatic pixels use the 24-step gray ramp (indices 232..255, plus the
// 16/231 cube corners for out-of-range endpoints), everything else is
// matched to the nearest of the 216 cube entries by CIE76 Lab distance
// with a lowest-index tiebreak.
func downgradeToXterm256(r, g, b uint8) uint8 {
	if r == g && g == b {
		return grayRampIndex(r)
	}

	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := uint8(16)
	bestDist := math.MaxFloat64
	for ri, rl := range cubeLevels {
		for gi, gl := range cubeLevels {
			for bi, bl := range cubeLevels {
				idx := uint8(16 + 36*ri + 6*gi + bi)
				cand := colorful.Color{R: float64(rl) / 255, G: float64(gl) / 255, B: float64(bl) / 255}
				d := target.DistanceLab(cand)
				if d < bestDist {
					bestDist = d
					best = idx
				}
			}
		}
	}
	return best
}

// grayRampIndex maps an achromatic level onto the 256-color palette: v<8
// folds to the cube's black corner (16), v>248 to its white corner (231),
// and everything between lands on the 24-step ramp via the standard
// "232 + (v-8)/10" formula.
func grayRampIndex(v uint8) uint8 {
	if v < 8 {
		return 16
	}
	if v > 248 {
		return 231
	}
	step := (int(v) - 8) / 10
	if step > 23 {
		step = 23
	}
	return uint8(232 + step)
}

// decomposeXterm256 inverts the xterm-256 index back to an approximate RGB
// triple, for the 256-to-16 downgrade path.
func decomposeXterm256(idx uint8) (r, g, b uint8) {
	switch {
	case idx < 16:
		return ansi16RGB(idx)
	case idx <= 231:
		i := int(idx) - 16
		return cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]
	default:
		v := uint8(8 + (int(idx)-232)*10)
		return v, v, v
	}
}

// ansi16RGB gives the canonical RGB approximation for the 16 basic colors,
// used only to feed decomposeXterm256's low-index pass-through back into
// the 16-color heuristic.
func ansi16RGB(idx uint8) (r, g, b uint8) {
	lo := uint8(128)
	if idx >= 8 {
		lo = 255
	}
	i := idx % 8
	rOn, gOn, bOn := i&1 != 0, i&2 != 0, i&4 != 0
	pick := func(on bool) uint8 {
		if on {
			return lo
		}
		return 0
	}
	return pick(rOn), pick(gOn), pick(bOn)
}

// downgradeTo16 picks one of the 16 basic ANSI colors for an RGB triple
// using a dominant-channel-relative-to-peak heuristic for hue, and the
// peak channel's absolute value for the bright/dim variant — this is a
// heuristic by design (spec.md names no exact algorithm for this step).
func downgradeTo16(r, g, b uint8) uint8 {
	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	if maxC == 0 {
		return 0
	}

	half := maxC / 2
	var base uint8
	if r >= half {
		base |= 1
	}
	if g >= half {
		base |= 2
	}
	if b >= half {
		base |= 4
	}
	if maxC >= 128 {
		base += 8
	}
	return base
}

// downgrade resolves a fully-specified (non-semantic, non-none) Color down
// to whatever depth caps admits, in RGB -> 256 -> 16 order, stopping as
// soon as the color already fits.
func downgrade(c sc.Color, truecolor, xterm256 bool) sc.Color {
	switch {
	case c.IsRGB():
		r, g, b := c.RGB()
		if truecolor {
			return c
		}
		idx256 := downgradeToXterm256(r, g, b)
		if xterm256 {
			return sc.Xterm256(idx256)
		}
		return sc.Indexed(downgradeTo16(r, g, b))
	case c.IsXterm256():
		if xterm256 || truecolor {
			return c
		}
		r, g, b := decomposeXterm256(c.XtermValue())
		return sc.Indexed(downgradeTo16(r, g, b))
	default:
		return c
	}
}
