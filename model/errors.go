// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates a format name or file extension that is not
	// text, yaml or json.
	ErrUnknownFormat = errors.New("model: unknown format")

	// ErrInvalidDocument indicates a document that cannot be turned into a
	// system: missing variables, both equations and a network, no
	// constraints.
	ErrInvalidDocument = errors.New("model: invalid document")
)

func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
