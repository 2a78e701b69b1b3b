package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/brush"
)

// ErrInvalidConfig is returned for configs that parse but cannot be used.
var ErrInvalidConfig = errors.New("replay: invalid config")

// Config describes the editor a session starts with.
//
//	width = 640
//	height = 480
//	background = "#ffffff"
//
//	[history]
//	limit = 50
//	memory_mb = 256
//
//	[brush]
//	size = 4
//	color = "#202020"
//	opacity = 1.0
//	shape = "ellipse"
//	filled = false
//
//	[transform]
//	min_size = 5
//	cancel_reverts = false
//	pick_radius = 8
type Config struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`

	History   HistoryConfig   `toml:"history"`
	Brush     BrushConfig     `toml:"brush"`
	Transform TransformConfig `toml:"transform"`
}

// HistoryConfig bounds the undo history.
type HistoryConfig struct {
	Limit    int `toml:"limit"`
	MemoryMB int `toml:"memory_mb"`
}

// BrushConfig holds the initial stroke settings and the shape tool's
// renderer.
type BrushConfig struct {
	Size    float64 `toml:"size"`
	Color   string  `toml:"color"`
	Opacity float64 `toml:"opacity"`
	Shape   string  `toml:"shape"`
	Filled  bool    `toml:"filled"`
}

// TransformConfig tunes the transform tool.
type TransformConfig struct {
	MinSize       float64 `toml:"min_size"`
	CancelReverts bool    `toml:"cancel_reverts"`
	PickRadius    float64 `toml:"pick_radius"`
}

// DefaultConfig returns the config used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Background: "#ffffff",
		History:    HistoryConfig{Limit: ggpaint.DefaultHistoryLimit},
		Brush: BrushConfig{
			Size:    4,
			Color:   "#000000",
			Opacity: 1,
			Shape:   "rectangle",
		},
		Transform: TransformConfig{
			MinSize:    ggpaint.MinLayerSize,
			PickRadius: 8,
		},
	}
}

// ParseConfig decodes TOML data on top of DefaultConfig, so a file only
// needs the keys it changes.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("replay: parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("replay: read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate checks the values that decoding alone cannot.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.History.Limit < 0 || c.History.MemoryMB < 0 {
		return fmt.Errorf("%w: negative history limit", ErrInvalidConfig)
	}
	if _, err := ggpaint.ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	if _, err := ggpaint.ParseColor(c.Brush.Color); err != nil {
		return fmt.Errorf("%w: brush color: %w", ErrInvalidConfig, err)
	}
	if _, err := shapeRenderer(c.Brush.Shape, c.Brush.Filled); err != nil {
		return err
	}
	return nil
}

// Options converts the config into editor options.
func (c Config) Options() ([]ggpaint.EditorOption, error) {
	bg, err := ggpaint.ParseColor(c.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	shape, err := shapeRenderer(c.Brush.Shape, c.Brush.Filled)
	if err != nil {
		return nil, err
	}
	return []ggpaint.EditorOption{
		ggpaint.WithBackground(bg),
		ggpaint.WithHistoryLimit(c.History.Limit),
		ggpaint.WithHistoryMemoryLimit(c.History.MemoryMB << 20),
		ggpaint.WithBrush(brush.Round{}),
		ggpaint.WithEraser(brush.Eraser{}),
		ggpaint.WithShape(shape),
		ggpaint.WithMinSize(c.Transform.MinSize),
		ggpaint.WithCancelReverts(c.Transform.CancelReverts),
		ggpaint.WithPickRadius(c.Transform.PickRadius),
	}, nil
}

// StrokeParams returns the initial brush settings.
func (c Config) StrokeParams() (ggpaint.StrokeParams, error) {
	col, err := ggpaint.ParseColor(c.Brush.Color)
	if err != nil {
		return ggpaint.StrokeParams{}, fmt.Errorf("%w: brush color: %w", ErrInvalidConfig, err)
	}
	return ggpaint.StrokeParams{Size: c.Brush.Size, Color: col, Opacity: c.Brush.Opacity}, nil
}

// NewEditor creates an editor set up as c describes.
func NewEditor(c Config, extra ...ggpaint.EditorOption) (*ggpaint.Editor, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	params, err := c.StrokeParams()
	if err != nil {
		return nil, err
	}
	e, err := ggpaint.NewEditor(c.Width, c.Height, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	e.SetStrokeParams(params)
	return e, nil
}

func shapeRenderer(name string, filled bool) (ggpaint.ShapeRenderer, error) {
	switch name {
	case "", "rectangle":
		return brush.Rectangle{Filled: filled}, nil
	case "ellipse":
		return brush.Ellipse{Filled: filled}, nil
	default:
		return nil, fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, name)
	}
}
