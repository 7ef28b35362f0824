// Package mapgen generates scene scripts procedurally: a grid of columns whose heights
// come from fractal value noise, each column a stack of parts joined face to face.
package mapgen

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
)

// TerraceOptions controls terrace generation.
// Width/Depth are in columns; TileSize is the X/Z size of a column and LevelHeight the
// Y size of one part. MaxLevels caps a column's part count (every column has at least one).
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type TerraceOptions struct {
	Width       int
	Depth       int
	TileSize    float32
	LevelHeight float32
	MaxLevels   int

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultTerraceOptions returns a small terrace that still exercises every joint kind.
func DefaultTerraceOptions() TerraceOptions {
	return TerraceOptions{
		Width:       6,
		Depth:       6,
		TileSize:    2,
		LevelHeight: 1,
		MaxLevels:   4,
		Octaves:     4,
		Frequency:   0.15,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

func (o *TerraceOptions) normalize() {
	if o.TileSize <= 0 {
		o.TileSize = 1
	}
	if o.LevelHeight <= 0 {
		o.LevelHeight = 1
	}
	if o.MaxLevels <= 0 {
		o.MaxLevels = 1
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
}

// Levels returns the part count of every column, indexed [z][x].
func Levels(opts TerraceOptions) [][]int {
	opts.normalize()
	out := make([][]int, max(opts.Depth, 0))
	for z := range out {
		out[z] = make([]int, max(opts.Width, 0))
		for x := range out[z] {
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency,
				opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if !isFinite(h) {
				h = 0
			}
			out[z][x] = 1 + int(math32.Floor(h*float32(opts.MaxLevels-1)+0.5))
		}
	}
	return out
}

// PartName names the part at level k of column (x, z).
func PartName(x, z, k int) string {
	return fmt.Sprintf("C%d_%d_%d", x, z, k)
}

// Terrace returns script lines that build the terrace under Workspace/<folder>.
// Columns sit on Y=0 centred on the origin on XZ; each bottom part is anchored. Every
// part that carries another gets a Weld or Glue top surface, picked by a second noise
// channel, and is joined to the part above it.
func Terrace(folder string, opts TerraceOptions) []string {
	opts.normalize()
	levels := Levels(opts)

	startX := -float32(opts.Width)*opts.TileSize*0.5 + opts.TileSize*0.5
	startZ := -float32(opts.Depth)*opts.TileSize*0.5 + opts.TileSize*0.5
	parent := "Workspace/" + folder

	lines := []string{
		fmt.Sprintf("# terrace %dx%d seed=%d", opts.Width, opts.Depth, opts.Seed),
		"folder " + folder,
	}
	for z, row := range levels {
		for x, n := range row {
			wx := startX + float32(x)*opts.TileSize
			wz := startZ + float32(z)*opts.TileSize
			for k := 0; k < n; k++ {
				name := PartName(x, z, k)
				wy := opts.LevelHeight * (float32(k) + 0.5)
				anchored := ""
				if k == 0 {
					anchored = " -anchored"
				}
				lines = append(lines, fmt.Sprintf("part -parent %s -size %g,%g,%g -pos %g,%g,%g%s %s",
					parent, opts.TileSize, opts.LevelHeight, opts.TileSize, wx, wy, wz, anchored, name))
				if k == 0 {
					continue
				}
				below := parent + "/" + PartName(x, z, k-1)
				surface := "Weld"
				if hash2D(int32(x), int32(z*31+k), int32(opts.Seed)+7) < 0.5 {
					surface = "Glue"
				}
				lines = append(lines,
					fmt.Sprintf("set %s TopSurface %s", below, surface),
					fmt.Sprintf("join %s %s/%s", below, parent, name))
			}
		}
	}
	return lines
}

// fractalValueNoise2D layers octaves of smooth value noise. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	fx, fy := math32.Floor(x), math32.Floor(y)
	x0, y0 := int32(fx), int32(fy)
	sx := smoothStep(x - fx)
	sy := smoothStep(y - fy)

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps lattice coordinates to a deterministic value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is 3t^2 - 2t^3 clamped to [0,1].
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
