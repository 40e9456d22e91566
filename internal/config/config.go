package config

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

type customType interface {
	Marshal() string
	Unmarshal(string) error
}

// ErrInvalidField is returned when a configuration key is missing or cannot be
// parsed.
type ErrInvalidField struct {
	Key string
	Err error
}

func (err ErrInvalidField) Error() string {
	return "config " + err.Key + ": " + err.Err.Error()
}

func (err ErrInvalidField) Unwrap() error { return err.Err }

// ErrMissing is wrapped in ErrInvalidField for unset required keys.
var ErrMissing = errors.New("missing required value")

type entry struct {
	Name     string
	Value    interface{}
	Required bool
}

func (e entry) Marshal(dst map[string]string) error {
	switch v := e.Value.(type) {
	case bool:
		dst[e.Name] = strconv.FormatBool(v)
	case string:
		dst[e.Name] = v
	case customType:
		dst[e.Name] = v.Marshal()
	default:
		return ErrInvalidField{
			Key: e.Name,
			Err: fmt.Errorf("unknown type %T", e.Value),
		}
	}

	return nil
}

// Unmarshal reads the entry through lookup. Unset optional entries keep their
// default value.
func (e *entry) Unmarshal(lookup func(key string) (string, bool)) (err error) {
	strVal, ok := lookup(e.Name)
	if !ok {
		if e.Required {
			return ErrInvalidField{Key: e.Name, Err: ErrMissing}
		}
		return nil
	}

	switch v := e.Value.(type) {
	case bool:
		e.Value, err = strconv.ParseBool(strVal)
	case string:
		e.Value = strVal
	case customType:
		err = v.Unmarshal(strVal)
	default:
		err = fmt.Errorf("unknown type %T", e.Value)
	}

	if err != nil {
		return ErrInvalidField{
			Key: e.Name,
			Err: err,
		}
	}

	return nil
}

type registry struct {
	entries []entry
}

func (reg *registry) get(name string) interface{} {
	for _, e := range reg.entries {
		if e.Name == name {
			return e.Value
		}
	}
	panic("config: unknown key " + name)
}

// Values marshals every entry back into strings.
func (reg *registry) Values() (map[string]string, error) {
	values := make(map[string]string, len(reg.entries))

	for _, e := range reg.entries {
		if err := e.Marshal(values); err != nil {
			return nil, err
		}
	}

	return values, nil
}

func (reg *registry) Unmarshal(lookup func(key string) (string, bool)) error {
	for i := range reg.entries {
		// reference the entry inside the slice
		if err := reg.entries[i].Unmarshal(lookup); err != nil {
			return err
		}
	}

	return nil
}
