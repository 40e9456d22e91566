package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, e := range newRegistry().entries {
		t.Setenv(e.Name, "")
		os.Unsetenv(e.Name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyToken, "Bot.token")

	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "Bot.token", cfg.Token)
	assert.False(t, cfg.GuildID.IsValid())
	assert.Equal(t, "", cfg.RolePrefix)
	assert.True(t, cfg.Descriptions)
	assert.True(t, cfg.EphemeralReplies)
	assert.Equal(t, 3*time.Second, cfg.Cooldown)
	assert.Equal(t, 15*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Dev())

	values, err := cfg.Values()
	require.NoError(t, err)
	assert.Equal(t, "********", values[KeyToken])
	assert.Equal(t, "3s", values[KeyCooldown])
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyToken, "token")
	t.Setenv(KeyGuildID, "123456789012345678")
	t.Setenv(KeyRolePrefix, "color-")
	t.Setenv(KeyDescriptions, "false")
	t.Setenv(KeyCooldown, "10")
	t.Setenv(KeyCommandTimeout, "1m")
	t.Setenv(KeyEnv, "dev")

	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, discord.GuildID(123456789012345678), cfg.GuildID)
	assert.Equal(t, "color-", cfg.RolePrefix)
	assert.False(t, cfg.Descriptions)
	assert.Equal(t, 10*time.Second, cfg.Cooldown)
	assert.Equal(t, time.Minute, cfg.CommandTimeout)
	assert.True(t, cfg.Dev())
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "colorpick.yaml")
	data := "discord_token: from-file\nrole_prefix: c-\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0600))

	v, err := NewViper(file)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Token)
	assert.Equal(t, "c-", cfg.RolePrefix)
}

func TestLoadErrors(t *testing.T) {
	var tests = []struct {
		env map[string]string
		key string
	}{
		{map[string]string{}, KeyToken},
		{map[string]string{KeyToken: "t", KeyDescriptions: "maybe"}, KeyDescriptions},
		{map[string]string{KeyToken: "t", KeyCooldown: "-5s"}, KeyCooldown},
		{map[string]string{KeyToken: "t", KeyGuildID: "guild"}, KeyGuildID},
		{map[string]string{KeyToken: "t", KeyCommandTimeout: "0"}, KeyCommandTimeout},
	}

	for _, test := range tests {
		clearEnv(t)
		for k, v := range test.env {
			t.Setenv(k, v)
		}

		v, err := NewViper("")
		require.NoError(t, err)

		_, err = Load(v)

		var fieldErr ErrInvalidField
		if assert.True(t, errors.As(err, &fieldErr), "env %v: %v", test.env, err) {
			assert.Equal(t, test.key, fieldErr.Key)
		}
	}
}

func TestLoadOffline(t *testing.T) {
	clearEnv(t)

	v, err := NewViper("")
	require.NoError(t, err)

	cfg, err := LoadOffline(v)
	require.NoError(t, err)
	assert.Empty(t, cfg.Token)
}

func TestWatch(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "colorpick.yaml")
	require.NoError(t, os.WriteFile(file, []byte("discord_token: t\nlog_level: info\n"), 0600))

	v, err := NewViper(file)
	require.NoError(t, err)

	levels := make(chan string, 10)
	Watch(v, func(cfg Config) { levels <- cfg.LogLevel })

	require.NoError(t, os.WriteFile(file, []byte("discord_token: t\nlog_level: debug\n"), 0600))

	select {
	case level := <-levels:
		assert.Equal(t, "debug", level)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not picked up")
	}
}
