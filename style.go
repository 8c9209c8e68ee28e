package tooltip

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Style holds the timing and visual parameters shared by tooltips. Zero
// fields fall back to DefaultStyle values when the style is applied.
type Style struct {
	Delay    time.Duration `yaml:"delay"`     // hover debounce window
	FadeIn   time.Duration `yaml:"fade_in"`   // expanded-variant fade duration
	MaxWidth float64       `yaml:"max_width"` // content wrap width

	PaddingX  float64 `yaml:"padding_x"`  // default variant, horizontal
	PaddingY  float64 `yaml:"padding_y"`  // default variant, vertical
	MinHeight float64 `yaml:"min_height"` // default variant box height floor

	ExpandedPadding float64 `yaml:"expanded_padding"`
	Gap             float64 `yaml:"gap"` // between title row and contents, and title and extra info

	Background         Color `yaml:"background"`
	Foreground         Color `yaml:"foreground"`
	ExpandedBackground Color `yaml:"expanded_background"`
	ExpandedForeground Color `yaml:"expanded_foreground"`
}

// DefaultStyle returns the stock tooltip style.
func DefaultStyle() Style {
	return Style{
		Delay:              DefaultDelay,
		FadeIn:             200 * time.Millisecond,
		MaxWidth:           280,
		PaddingX:           16,
		PaddingY:           8,
		MinHeight:          24,
		ExpandedPadding:    16,
		Gap:                16,
		Background:         Color{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Foreground:         ColorWhite,
		ExpandedBackground: ColorWhite,
		ExpandedForeground: Color{R: 0.13, G: 0.13, B: 0.13, A: 1},
	}
}

// withDefaults fills zero fields from DefaultStyle.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.Delay <= 0 {
		s.Delay = d.Delay
	}
	if s.FadeIn <= 0 {
		s.FadeIn = d.FadeIn
	}
	if s.MaxWidth <= 0 {
		s.MaxWidth = d.MaxWidth
	}
	if s.PaddingX <= 0 {
		s.PaddingX = d.PaddingX
	}
	if s.PaddingY <= 0 {
		s.PaddingY = d.PaddingY
	}
	if s.MinHeight <= 0 {
		s.MinHeight = d.MinHeight
	}
	if s.ExpandedPadding <= 0 {
		s.ExpandedPadding = d.ExpandedPadding
	}
	if s.Gap <= 0 {
		s.Gap = d.Gap
	}
	if s.Background == (Color{}) {
		s.Background = d.Background
	}
	if s.Foreground == (Color{}) {
		s.Foreground = d.Foreground
	}
	if s.ExpandedBackground == (Color{}) {
		s.ExpandedBackground = d.ExpandedBackground
	}
	if s.ExpandedForeground == (Color{}) {
		s.ExpandedForeground = d.ExpandedForeground
	}
	return s
}

// LoadStyle parses a YAML style document on top of DefaultStyle.
// Durations use Go syntax ("250ms"); colors use "#rrggbb" or "#rrggbbaa".
func LoadStyle(data []byte) (Style, error) {
	s := DefaultStyle()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("tooltip: parse style: %w", err)
	}
	if s.Delay < 0 || s.FadeIn < 0 {
		return Style{}, fmt.Errorf("tooltip: parse style: negative duration")
	}
	if s.MaxWidth < 0 || s.PaddingX < 0 || s.PaddingY < 0 || s.MinHeight < 0 ||
		s.ExpandedPadding < 0 || s.Gap < 0 {
		return Style{}, fmt.Errorf("tooltip: parse style: negative size")
	}
	return s, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("tooltip: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("tooltip: invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColor.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalText implements encoding.TextMarshaler as "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	to8 := func(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))), nil
}

// Options is the per-tooltip configuration surface.
type Options struct {
	Variant Variant `yaml:"variant"`
	// Placement is honored by the expanded variant only; the default
	// variant always prefers up-down.
	Placement PlacementMode `yaml:"placement"`

	// Text is the content of the default variant.
	Text string `yaml:"text"`

	// TipTitle, ExtraInfo and Contents make up the expanded variant.
	TipTitle  string `yaml:"tip_title"`
	ExtraInfo string `yaml:"extra_info"`
	Contents  string `yaml:"contents"`
}

// Validate reports option combinations that cannot be rendered.
func (o Options) Validate() error {
	switch o.Variant {
	case VariantDefault:
		if o.TipTitle != "" || o.ExtraInfo != "" || o.Contents != "" {
			return fmt.Errorf("tooltip: tip_title, extra_info and contents need the expanded variant")
		}
	case VariantExpanded:
		if o.Text != "" {
			return fmt.Errorf("tooltip: text is only used by the default variant")
		}
	default:
		return fmt.Errorf("tooltip: unknown variant %d", o.Variant)
	}
	if o.Placement != PlacementUpDown && o.Placement != PlacementLeftRight {
		return fmt.Errorf("tooltip: unknown placement %d", o.Placement)
	}
	return nil
}

// Mode returns the placement mode actually used for these options.
func (o Options) Mode() PlacementMode {
	if o.Variant == VariantExpanded {
		return o.Placement
	}
	return PlacementUpDown
}

// LoadOptions parses a YAML options document and validates it.
func LoadOptions(data []byte) (Options, error) {
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("tooltip: parse options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
