// Package level loads puzzle levels from YAML and serializes tracks.
package level

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thomasahle/trainbox/model"
)

// DefaultPadding is the identity segment width used when a level omits it.
const DefaultPadding = 20

//go:embed levels/*.yaml
var builtin embed.FS

// ErrUnknownLevel is returned by Builtin for names with no embedded level.
var ErrUnknownLevel = errors.New("unknown level")

// Level is a puzzle: trains with the given cargos enter a starting track.
// Goal is the cargo order the player is asked to produce; it is carried as
// data and not checked here.
type Level struct {
	Name    string
	Padding float64
	Cargos  []int
	Goal    []int
	Track   model.Component
}

// Node is the serialized form of a model.Component, shared by level files
// and snapshots.
type Node struct {
	Kind     model.Kind `yaml:"kind" msgpack:"k"`
	Children []Node     `yaml:"children,omitempty" msgpack:"c,omitempty"`
}

type file struct {
	Name    string  `yaml:"name"`
	Padding float64 `yaml:"padding"`
	Cargos  []int   `yaml:"cargos"`
	Goal    []int   `yaml:"goal"`
	Track   *Node   `yaml:"track"`
}

// Parse reads a level from YAML.
func Parse(r io.Reader) (*Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return f.level()
}

// Load reads a level file from disk.
func Load(filePath string) (*Level, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Builtin returns an embedded level by name, e.g. "02-first-flip".
func Builtin(name string) (*Level, error) {
	f, err := builtin.Open(path.Join("levels", name+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
		}
		return nil, fmt.Errorf("open builtin level: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Names lists the embedded levels in order.
func Names() []string {
	entries, err := builtin.ReadDir("levels")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (f *file) level() (*Level, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, fmt.Errorf("level name is required")
	}
	if len(f.Cargos) == 0 {
		return nil, fmt.Errorf("level %q: cargos are required", f.Name)
	}
	if f.Padding < 0 {
		return nil, fmt.Errorf("level %q: padding must not be negative", f.Name)
	}
	padding := f.Padding
	if padding == 0 {
		padding = DefaultPadding
	}

	var track model.Component = &model.Sequence{}
	if f.Track != nil {
		var err error
		if track, err = f.Track.Model(); err != nil {
			return nil, fmt.Errorf("level %q: %w", f.Name, err)
		}
		if track.Kind() != model.KindSequence {
			return nil, fmt.Errorf("level %q: track must be a %s, got %s", f.Name, model.KindSequence, track.Kind())
		}
	}

	return &Level{
		Name:    f.Name,
		Padding: padding,
		Cargos:  f.Cargos,
		Goal:    f.Goal,
		Track:   track,
	}, nil
}

// Model converts the node tree into model components.
func (n Node) Model() (model.Component, error) {
	c, err := model.New(n.Kind)
	if err != nil {
		return nil, err
	}
	seq, ok := c.(*model.Sequence)
	if !ok {
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("%s cannot have children", n.Kind)
		}
		return c, nil
	}
	for _, child := range n.Children {
		m, err := child.Model()
		if err != nil {
			return nil, err
		}
		seq.Children = append(seq.Children, m)
	}
	return seq, nil
}

// NodeOf converts a model component into its serialized form.
func NodeOf(c model.Component) Node {
	n := Node{Kind: c.Kind()}
	if seq, ok := c.(*model.Sequence); ok {
		for _, child := range seq.Children {
			n.Children = append(n.Children, NodeOf(child))
		}
	}
	return n
}
