package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure of a scene file.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed config.schema.json
var configSchema string

// ChargeSpec describes one charge of the scene.
type ChargeSpec struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Magnitude float64 `json:"magnitude"`
	Movable   bool    `json:"movable"`
}

// Config is a scene: world size, force constants, colors and the charges.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	ChargeRadius float64 `json:"chargeRadius"` // disk radius, also the grab radius

	// Force model
	CoulombConstant float64 `json:"coulombConstant"`
	MinDistance     float64 `json:"minDistance"`
	LockGap         float64 `json:"lockGap"`
	StepScale       float64 `json:"stepScale"`
	MinSeparation   float64 `json:"minSeparation"`

	TicksPerSecond int `json:"ticksPerSecond"`

	PositiveColor string `json:"positiveColor"`
	NegativeColor string `json:"negativeColor"`

	Charges []ChargeSpec `json:"charges"`
}

// DefaultScene is the reference layout: three fixed charges on the corners
// of a square and a movable positive charge on the fourth.
func DefaultScene() []ChargeSpec {
	return []ChargeSpec{
		{ID: "q1", X: 100, Y: 100, Magnitude: -1},
		{ID: "q2", X: 700, Y: 100, Magnitude: 1},
		{ID: "q3", X: 100, Y: 700, Magnitude: -1},
		{ID: "q4", X: 700, Y: 700, Magnitude: 1, Movable: true},
	}
}

// DefaultConfig returns the reference scene on an 800x800 world.
func DefaultConfig() *Config {
	p := DefaultPhysics()
	return &Config{
		WorldWidth:      800,
		WorldHeight:     800,
		ChargeRadius:    20,
		CoulombConstant: p.K,
		MinDistance:     p.MinDistance,
		LockGap:         p.LockGap,
		StepScale:       p.StepScale,
		MinSeparation:   p.MinSeparation,
		TicksPerSecond:  60,
		PositiveColor:   "#ff0000",
		NegativeColor:   "#0000ff",
		Charges:         DefaultScene(),
	}
}

// Physics extracts the force constants.
func (c *Config) Physics() Physics {
	return Physics{
		K:             c.CoulombConstant,
		MinDistance:   c.MinDistance,
		LockGap:       c.LockGap,
		StepScale:     c.StepScale,
		MinSeparation: c.MinSeparation,
	}
}

// Validate checks what the schema cannot express.
func (c *Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidConfig, c.WorldWidth, c.WorldHeight)
	}
	if c.ChargeRadius <= 0 || c.MinDistance <= 0 || c.MinSeparation <= 0 {
		return fmt.Errorf("%w: chargeRadius, minDistance and minSeparation must be positive", ErrInvalidConfig)
	}
	if len(c.Charges) == 0 {
		return fmt.Errorf("%w: scene has no charges", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Charges))
	for i, s := range c.Charges {
		if s.ID == "" {
			return fmt.Errorf("%w: charge #%d has no id", ErrInvalidConfig, i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate charge id %q", ErrInvalidConfig, s.ID)
		}
		seen[s.ID] = true
		if s.Magnitude == 0 {
			return fmt.Errorf("%w: charge %q has zero magnitude", ErrInvalidConfig, s.ID)
		}
	}
	if _, err := parseHexColor(c.PositiveColor); err != nil {
		return fmt.Errorf("%w: positiveColor: %v", ErrInvalidConfig, err)
	}
	if _, err := parseHexColor(c.NegativeColor); err != nil {
		return fmt.Errorf("%w: negativeColor: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig loads a scene from a JSON or YAML file and validates it against
// the embedded schema. Fields left out of the file keep their default value.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		if b, err = yamlToJSON(b); err != nil {
			return nil, err
		}
	}
	return ParseConfig(b)
}

// ParseConfig validates a JSON document and decodes it over DefaultConfig.
func ParseConfig(doc []byte) (*Config, error) {
	sch, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config json: %v", ErrInvalidConfig, err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := DefaultConfig()
	// the default scene must not leak into a shorter one from the file
	cfg.Charges = nil
	if err := json.Unmarshal(doc, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Charges == nil {
		cfg.Charges = DefaultScene()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("config.schema.json", strings.NewReader(configSchema)); err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	sch, err := c.Compile("config.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return sch, nil
}

// yamlToJSON re-encodes a YAML document so it goes through the same schema.
func yamlToJSON(b []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config yaml: %v", ErrInvalidConfig, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml document is not representable as json: %v", ErrInvalidConfig, err)
	}
	return out, nil
}

// parseHexColor accepts #rrggbb only; colorful.Hex alone also takes #rgb.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("%q is not a #rrggbb color", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q is not a #rrggbb color: %v", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func (c *Config) positiveRGBA() color.RGBA {
	if clr, err := parseHexColor(c.PositiveColor); err == nil {
		return clr
	}
	return color.RGBA{R: 255, A: 255}
}

func (c *Config) negativeRGBA() color.RGBA {
	if clr, err := parseHexColor(c.NegativeColor); err == nil {
		return clr
	}
	return color.RGBA{B: 255, A: 255}
}
