// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlump/lumping"
)

// Reduced converts a reduced system into a loadable document. name is used
// as the source model name.
func Reduced(name string, red *lumping.Reduced) Document {
	res := red.Lumping()
	ring := red.Ring()

	doc := Document{
		Name:      name + "_lumped",
		Variables: ring.Names(),
		Equations: make(map[string]string, red.Dim()),
		// the lumped variables are their own constraints
		Constraints: ring.Names(),
		Lumping: &LumpingSection{
			Source:     name,
			Original:   res.Ring().Names(),
			Passes:     res.Passes,
			Iterations: res.Iterations,
		},
	}
	for _, c := range res.Constraints() {
		doc.Lumping.Constraints = append(doc.Lumping.Constraints, c.Format(res.Ring()))
	}
	for i, row := range res.Basis() {
		v := ring.Name(i)
		doc.Equations[v] = red.RHS(i).String()
		doc.Lumping.Variables = append(doc.Lumping.Variables, LumpedVariable{
			Name:       v,
			Definition: row.Format(res.Ring()),
			Row:        row.Strings(),
		})
	}

	return doc
}

// Encode writes a reduced system in the requested format.
func Encode(w io.Writer, name string, red *lumping.Reduced, format Format) error {
	switch format {
	case FormatText:
		return encodeText(w, name, red)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Reduced(name, red)); err != nil {
			return modelErrorf("Encode", err)
		}
		if err := enc.Close(); err != nil {
			return modelErrorf("Encode", err)
		}

		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Reduced(name, red)); err != nil {
			return modelErrorf("Encode", err)
		}

		return nil
	}

	return modelErrorf("Encode", fmt.Errorf("%q: %w", format, ErrUnknownFormat))
}

func encodeText(w io.Writer, name string, red *lumping.Reduced) error {
	res := red.Lumping()
	_, err := fmt.Fprintf(w, "# %s: %d -> %d variables (%d passes)\n%s",
		name, res.Ring().Len(), red.Dim(), res.Passes, red)
	if err != nil {
		return modelErrorf("Encode", err)
	}

	return nil
}
