// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvlump/ode"
)

// Format selects a document encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text", "yaml"/"yml" and "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatOf infers the input format from a file extension. Anything but
// .json is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Document is the on-disk shape of a model.
type Document struct {
	Name        string            `yaml:"name" json:"name" mapstructure:"name"`
	Variables   []string          `yaml:"variables,omitempty" json:"variables,omitempty" mapstructure:"variables"`
	Equations   map[string]string `yaml:"equations,omitempty" json:"equations,omitempty" mapstructure:"equations"`
	Constraints []string          `yaml:"constraints,omitempty" json:"constraints,omitempty" mapstructure:"constraints"`
	Network     *NetworkSection   `yaml:"network,omitempty" json:"network,omitempty" mapstructure:"network"`
	Lumping     *LumpingSection   `yaml:"lumping,omitempty" json:"lumping,omitempty" mapstructure:"lumping"`
}

// NetworkSection describes a linear network model.
type NetworkSection struct {
	Edges         string     `yaml:"edges,omitempty" json:"edges,omitempty" mapstructure:"edges"`
	Inline        [][]string `yaml:"inline,omitempty" json:"inline,omitempty" mapstructure:"inline"`
	Names         []string   `yaml:"names,omitempty" json:"names,omitempty" mapstructure:"names"`
	Vertices      int        `yaml:"vertices,omitempty" json:"vertices,omitempty" mapstructure:"vertices"`
	WeightColumn  *int       `yaml:"weight_column,omitempty" json:"weight_column,omitempty" mapstructure:"weight_column"`
	Laplacian     bool       `yaml:"laplacian,omitempty" json:"laplacian,omitempty" mapstructure:"laplacian"`
	StrictWeights bool       `yaml:"strict_weights,omitempty" json:"strict_weights,omitempty" mapstructure:"strict_weights"`
}

// LumpingSection records how a reduced document was obtained. It is
// informational and ignored when the document is loaded.
type LumpingSection struct {
	Source      string           `yaml:"source,omitempty" json:"source,omitempty" mapstructure:"source"`
	Original    []string         `yaml:"original" json:"original" mapstructure:"original"`
	Constraints []string         `yaml:"constraints" json:"constraints" mapstructure:"constraints"`
	Variables   []LumpedVariable `yaml:"variables" json:"variables" mapstructure:"variables"`
	Passes      int              `yaml:"passes" json:"passes" mapstructure:"passes"`
	Iterations  int              `yaml:"iterations" json:"iterations" mapstructure:"iterations"`
}

// LumpedVariable is one row of the lumping matrix.
type LumpedVariable struct {
	Name       string   `yaml:"name" json:"name" mapstructure:"name"`
	Definition string   `yaml:"definition" json:"definition" mapstructure:"definition"`
	Row        []string `yaml:"row" json:"row" mapstructure:"row"`
}

// Model is a decoded document turned into engine inputs.
type Model struct {
	Name        string
	System      *ode.System
	Constraints *ode.ConstraintSet
	Document    Document
}
