// Package config loads the editor settings from a TOML file and builds the
// logger.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/history"
	"FigureEditor/internal/state"
)

// Config is the whole editor configuration.
type Config struct {
	Canvas CanvasConf
	Style  StyleConf
	Log    LogConf

	md toml.MetaData
}

// CanvasConf sizes the window and the undo history.
type CanvasConf struct {
	Width        int
	Height       int
	HistoryDepth int
}

// StyleConf is the current style at startup. Paints are palette names.
type StyleConf struct {
	Kind         string
	Fill         string
	Edge         string
	LineType     string
	LineWidth    int
	NGonSides    int
	StarPoints   int
	StarRatio    float64
	CornerRadius float64
}

// LogConf configures the logger.
type LogConf struct {
	Level string
	JSON  bool
}

// Default returns the configuration used when no file is given.
func Default() Config {
	d := state.DefaultCurrentStyle
	return Config{
		Canvas: CanvasConf{Width: 650, Height: 450, HistoryDepth: history.DefaultCapacity},
		Style: StyleConf{
			Kind:         d.Kind.String(),
			Fill:         "Black",
			Edge:         "Blue",
			LineType:     d.LineType.String(),
			LineWidth:    d.LineWidth,
			NGonSides:    d.NGonSides,
			StarPoints:   d.StarPoints,
			StarRatio:    d.StarRatio,
			CornerRadius: d.CornerRadius,
		},
		Log: LogConf{Level: "info"},
	}
}

// LoadFile reads the configuration in TOML format from fileName over the
// defaults.
func LoadFile(fileName string) (Config, error) {
	return load(fileName, true)
}

// Load is like LoadFile but reads the configuration from a string.
func Load(conf string) (Config, error) {
	return load(conf, false)
}

func load(conf string, isFileName bool) (Config, error) {
	c := Default()
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, &c)
	} else {
		md, err = toml.Decode(conf, &c)
	}
	if err != nil {
		return c, errors.Wrap(err, "decoding configuration")
	}
	c.md = md
	return c, c.Validate()
}

// Undecoded lists the keys of the file that match no setting.
func (c Config) Undecoded() []string {
	var keys []string
	for _, k := range c.md.Undecoded() {
		keys = append(keys, k.String())
	}
	return keys
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.HistoryDepth <= 0 {
		return errors.Errorf("history depth %d must be positive", c.Canvas.HistoryDepth)
	}
	if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	_, err := c.CurrentStyle()
	return err
}

// CurrentStyle converts the style section.
func (c Config) CurrentStyle() (state.CurrentStyle, error) {
	s := c.Style
	kind, err := figure.ParseKind(s.Kind)
	if err != nil {
		return state.CurrentStyle{}, err
	}
	lt, err := figure.ParseLineType(s.LineType)
	if err != nil {
		return state.CurrentStyle{}, err
	}
	fill, ok := figure.LookupPaint(s.Fill)
	if !ok {
		return state.CurrentStyle{}, errors.Errorf("unknown fill paint %q", s.Fill)
	}
	edge, ok := figure.LookupPaint(s.Edge)
	if !ok || edge.IsNone() {
		return state.CurrentStyle{}, errors.Errorf("unknown edge paint %q", s.Edge)
	}
	cs := state.CurrentStyle{
		Kind: kind,
		Style: figure.Style{
			Fill:      fill,
			Edge:      edge,
			LineType:  lt,
			LineWidth: s.LineWidth,
		},
		NGonSides:    s.NGonSides,
		StarPoints:   s.StarPoints,
		StarRatio:    s.StarRatio,
		CornerRadius: s.CornerRadius,
	}
	if err := cs.Validate(); err != nil {
		return state.CurrentStyle{}, errors.Wrap(err, "style")
	}
	return cs, nil
}

// NewLogger returns the root logger of the editor writing to w, or to
// stderr when w is nil.
func NewLogger(c LogConf, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "figure-editor",
		Level:      hclog.LevelFromString(c.Level),
		Output:     w,
		JSONFormat: c.JSON,
	})
}
