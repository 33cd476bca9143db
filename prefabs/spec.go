package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EffectFile is the default effect spec.
const EffectFile = "effect.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type EffectSpec struct {
	Name     string       `yaml:"name"`
	Surface  SurfaceSpec  `yaml:"surface"`
	Camera   CameraSpec   `yaml:"camera"`
	Lights   LightsSpec   `yaml:"lights"`
	Mesh     MeshSpec     `yaml:"mesh"`
	Material MaterialSpec `yaml:"material"`
	Timeline TimelineSpec `yaml:"timeline"`
}

// LoadEffectSpec loads an effect spec; an empty name loads EffectFile.
func LoadEffectSpec(filename string) (*EffectSpec, error) {
	if filename == "" {
		filename = EffectFile
	}
	spec, err := LoadSpec[EffectSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SurfaceSpec struct {
	Width               float64    `yaml:"width"`
	Height              float64    `yaml:"height"`
	PixelRatio          float64    `yaml:"pixel_ratio"`
	ClearColor          *YAMLColor `yaml:"clear_color"`
	ToneMapping         string     `yaml:"tone_mapping"`
	ToneMappingExposure float64    `yaml:"tone_mapping_exposure"`
	ShadowMap           bool       `yaml:"shadow_map"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type CameraSpec struct {
	Fovy      float64        `yaml:"fovy"`
	Near      float64        `yaml:"near"`
	Far       float64        `yaml:"far"`
	Transform *TransformSpec `yaml:"transform"`
	LookAt    TransformSpec  `yaml:"look_at"`
}

type LightsSpec struct {
	Ambient     AmbientLightSpec     `yaml:"ambient"`
	Directional DirectionalLightSpec `yaml:"directional"`
}

type AmbientLightSpec struct {
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
}

type DirectionalLightSpec struct {
	Color      *YAMLColor    `yaml:"color"`
	Intensity  float64       `yaml:"intensity"`
	CastShadow bool          `yaml:"cast_shadow"`
	Transform  TransformSpec `yaml:"transform"`
}

type MeshSpec struct {
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Transform TransformSpec `yaml:"transform"`
}

type MaterialSpec struct {
	CurrentTexture  string `yaml:"current_texture"`
	NextTexture     string `yaml:"next_texture"`
	DisplacementMap string `yaml:"displacement_map"`
	TextureWidth    int    `yaml:"texture_width"`
	TextureHeight   int    `yaml:"texture_height"`
	DirectCoupling  bool   `yaml:"direct_coupling"`
}

type TimelineSpec struct {
	From   float64    `yaml:"from"`
	Repeat int        `yaml:"repeat"`
	Steps  []StepSpec `yaml:"steps"`
}

// StepSpec is one tween. Ease is a curve name ("power4.out") or
// "script:<file>.tengo" naming a script under prefabs/scripts.
type StepSpec struct {
	Name     string  `yaml:"name"`
	To       float64 `yaml:"to"`
	Delay    float64 `yaml:"delay"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

// ScriptEase returns the script file named by Ease, if any.
func (s StepSpec) ScriptEase() (string, bool) {
	return strings.CutPrefix(strings.TrimSpace(s.Ease), "script:")
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	s = strings.TrimPrefix(s, "0x")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed colour, or fallback when the field was absent.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
