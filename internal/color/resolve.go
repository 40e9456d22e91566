package color

import (
	"strings"

	"github.com/pkg/errors"
)

// Resolver turns raw input into a Color. It holds no mutable state and is safe
// for concurrent use.
type Resolver struct {
	table        Table
	descriptions bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDescriptions enables descriptions such as "dark red" after the name
// lookup fails.
func WithDescriptions(enabled bool) ResolverOption {
	return func(r *Resolver) { r.descriptions = enabled }
}

// NewResolver creates a Resolver that looks names up in table.
func NewResolver(table Table, opts ...ResolverOption) *Resolver {
	r := &Resolver{table: table}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Table returns the name table the resolver was created with.
func (r *Resolver) Table() Table { return r.table }

// Descriptions returns true if descriptions are enabled.
func (r *Resolver) Descriptions() bool { return r.descriptions }

// Resolve parses raw as, in order, a 3 or 6 digit hex code with an optional
// leading "#", a color name and, if enabled, a description.
func (r *Resolver) Resolve(raw string) (Color, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return Color{}, ErrEmptyInput
	}

	digits := strings.TrimPrefix(input, "#")
	hashed := len(digits) != len(input)

	if isHexDigits(digits) {
		rgb, ok := parseHex(digits)
		if !ok {
			return Color{}, errors.Wrapf(ErrInvalidHex, "%q has %d digits", input, len(digits))
		}
		return newColor(rgb, "", FromHex), nil
	}

	if hashed {
		return Color{}, errors.Wrapf(ErrInvalidHex, "%q", input)
	}

	if c, ok := r.table.Lookup(input); ok {
		return c, nil
	}

	if r.descriptions {
		if c, ok := Describe(input); ok {
			return c, nil
		}
	}

	return Color{}, errors.Wrapf(ErrUnknownName, "%q", input)
}
