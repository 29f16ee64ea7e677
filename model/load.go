// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlump/network"
	"github.com/katalvlaran/lvlump/ode"
)

// Option configures Load, Decode and Build.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	baseDir     string
	constraints []string
	strict      bool
}

// WithLogger sets the logger handed to the network reader.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBaseDir resolves relative edge file paths against dir.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// WithConstraints replaces the document constraints.
func WithConstraints(specs ...string) Option {
	return func(o *options) { o.constraints = append([]string(nil), specs...) }
}

// WithStrictConstraints rejects linearly dependent constraints instead of
// dropping them.
func WithStrictConstraints() Option {
	return func(o *options) { o.strict = true }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Load reads and builds the model stored at path. Relative edge files are
// resolved against the directory of path unless WithBaseDir says otherwise.
func Load(path string, opts ...Option) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, modelErrorf("Load", err)
	}
	opts = append([]Option{WithBaseDir(filepath.Dir(path))}, opts...)
	m, err := Decode(bytes.NewReader(data), FormatOf(path), opts...)
	if err != nil {
		return nil, modelErrorf("Load", fmt.Errorf("%s: %w", path, err))
	}

	return m, nil
}

// Decode reads one document in the given format and builds it.
func Decode(r io.Reader, format Format, opts ...Option) (*Model, error) {
	doc, err := DecodeDocument(r, format)
	if err != nil {
		return nil, err
	}

	return doc.Build(opts...)
}

// DecodeDocument reads a document without building it.
func DecodeDocument(r io.Reader, format Format) (Document, error) {
	var raw map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return Document{}, modelErrorf("DecodeDocument", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return Document{}, modelErrorf("DecodeDocument", err)
		}
	default:
		return Document{}, modelErrorf("DecodeDocument", fmt.Errorf("%q: %w", format, ErrUnknownFormat))
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Document{}, modelErrorf("DecodeDocument", err)
	}
	if err = dec.Decode(raw); err != nil {
		return Document{}, modelErrorf("DecodeDocument", fmt.Errorf("%w: %w", ErrInvalidDocument, err))
	}

	return doc, nil
}

// Build turns the document into a System and a ConstraintSet.
func (d Document) Build(opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)

	var (
		sys *ode.System
		err error
	)
	switch {
	case d.Network != nil && (len(d.Variables) > 0 || len(d.Equations) > 0):
		return nil, modelErrorf("Build", fmt.Errorf("both equations and a network: %w", ErrInvalidDocument))
	case d.Network != nil:
		sys, err = d.Network.system(o)
	case len(d.Variables) == 0:
		return nil, modelErrorf("Build", fmt.Errorf("no variables: %w", ErrInvalidDocument))
	default:
		sys, err = ode.ParseSystem(d.Variables, d.Equations)
	}
	if err != nil {
		return nil, modelErrorf("Build", err)
	}

	specs := d.Constraints
	if len(o.constraints) > 0 {
		specs = o.constraints
	}
	if len(specs) == 0 {
		return nil, modelErrorf("Build", fmt.Errorf("no constraints: %w", ode.ErrEmptyConstraintSet))
	}
	var csOpts []ode.ConstraintOption
	if o.strict {
		csOpts = append(csOpts, ode.Strict())
	}
	cs, err := ode.ConstraintsFromStrings(sys.Ring(), specs, csOpts...)
	if err != nil {
		return nil, modelErrorf("Build", err)
	}
	if dropped := cs.Dropped(); len(dropped) > 0 {
		o.logger.Warn("dependent constraints dropped", "positions", dropped)
	}

	return &Model{Name: d.Name, System: sys, Constraints: cs, Document: d}, nil
}

// system builds the linear network system, reading the edge file when set
// and appending inline edges after it.
func (n *NetworkSection) system(o options) (*ode.System, error) {
	netOpts := []network.Option{network.WithLogger(o.logger)}
	if n.Vertices > 0 {
		netOpts = append(netOpts, network.WithVertices(n.Vertices))
	}
	if n.WeightColumn != nil {
		netOpts = append(netOpts, network.WithWeightColumn(*n.WeightColumn))
	}
	if n.StrictWeights {
		netOpts = append(netOpts, network.WithStrictWeights())
	}

	var src []io.Reader
	if n.Edges != "" {
		path := n.Edges
		if !filepath.IsAbs(path) && o.baseDir != "" {
			path = filepath.Join(o.baseDir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = append(src, f, strings.NewReader("\n"))
	}
	if len(n.Inline) > 0 {
		var sb strings.Builder
		for _, e := range n.Inline {
			sb.WriteString(strings.Join(e, ","))
			sb.WriteByte('\n')
		}
		src = append(src, strings.NewReader(sb.String()))
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("network without edges: %w", ErrInvalidDocument)
	}

	g, err := network.ReadEdgeCSV(io.MultiReader(src...), netOpts...)
	if err != nil {
		return nil, err
	}
	sysOpts := netOpts
	if n.Laplacian {
		sysOpts = append(sysOpts, network.WithLaplacian())
	}
	if len(n.Names) > 0 {
		sysOpts = append(sysOpts, network.WithNames(n.Names...))
	}

	return network.LinearSystem(g, sysOpts...)
}
