package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the prefs file used when none is given, relative to the process working directory.
const DefaultPath = "config/engine.yaml"

// PathEnv names the environment variable that overrides DefaultPath.
const PathEnv = "JOINT_ENGINE_CONFIG"

// Prefs holds viewer and simulation preferences. Persisted across runs.
// TickRate is the number of world steps per second. Font names an overlay font searched
// under the fonts directories; empty uses the raylib default.
type Prefs struct {
	ShowFPS          bool       `json:"show_fps" yaml:"show_fps"`
	ShowMemAlloc     bool       `json:"show_memalloc" yaml:"show_memalloc"`
	GridVisible      bool       `json:"grid_visible" yaml:"grid_visible"`
	ShowSpanningTree bool       `json:"show_spanning_tree" yaml:"show_spanning_tree"`
	ShowFeatures     bool       `json:"show_features" yaml:"show_features"`
	TickRate         int        `json:"tick_rate" yaml:"tick_rate"`
	Gravity          [3]float32 `json:"gravity" yaml:"gravity"`
	Font             string     `json:"font,omitempty" yaml:"font,omitempty"`
}

// Default returns default preferences (debug overlays off, grid and adornments on, 60 Hz, Y-down gravity).
func Default() Prefs {
	return Prefs{
		GridVisible:      true,
		ShowSpanningTree: true,
		ShowFeatures:     true,
		TickRate:         60,
		Gravity:          [3]float32{0, -9.8, 0},
	}
}

// Dt is the step length implied by TickRate.
func (p Prefs) Dt() float32 {
	if p.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float32(p.TickRate)
}

// GravityVec returns Gravity as a vector.
func (p Prefs) GravityVec() mgl32.Vec3 {
	return mgl32.Vec3(p.Gravity)
}

// Path returns the prefs path: $JOINT_ENGINE_CONFIG when set, DefaultPath otherwise.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load reads preferences from path, as JSON for a .json file and YAML otherwise.
// Fields missing from the file keep their defaults. If the file is missing, returns
// Default() and does not create a file; an unreadable file also yields Default() along
// with the error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, err
	}
	if isJSON(path) {
		err = json.Unmarshal(data, &p)
	} else {
		err = yaml.Unmarshal(data, &p)
	}
	if err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(p, "", "\t")
	} else {
		data, err = yaml.Marshal(p)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
