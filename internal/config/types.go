package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

// duration accepts Go durations ("1m30s") or whole seconds ("90").
type duration struct {
	value time.Duration
}

var _ customType = (*duration)(nil)

func (d *duration) Marshal() string {
	return d.value.String()
}

func (d *duration) Unmarshal(v string) error {
	v = strings.TrimSpace(v)

	t, err := time.ParseDuration(v)
	if err == nil && t >= 0 {
		d.value = t
		return nil
	}

	secs, err := strconv.ParseUint(v, 10, 32)
	if err == nil {
		d.value = time.Duration(secs) * time.Second
		return nil
	}

	return errors.New("invalid duration or seconds")
}

// secret is a string that never marshals back.
type secret struct {
	value string
}

var _ customType = (*secret)(nil)

func (s *secret) Marshal() string {
	if s.value == "" {
		return ""
	}
	return "********"
}

func (s *secret) Unmarshal(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return ErrMissing
	}

	s.value = v
	return nil
}

// snowflake is an optional Discord ID; zero means unset.
type snowflake struct {
	value discord.Snowflake
}

var _ customType = (*snowflake)(nil)

func (s *snowflake) Marshal() string {
	if !s.value.IsValid() {
		return ""
	}
	return s.value.String()
}

func (s *snowflake) Unmarshal(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		s.value = 0
		return nil
	}

	sf, err := discord.ParseSnowflake(v)
	if err != nil {
		return errors.Wrap(err, "invalid snowflake")
	}

	s.value = sf
	return nil
}
