package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	width int
	name  string
	calls []string
}

func withWidth(w int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if w <= 0 {
			return errors.New("width must be positive")
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("Applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withWidth(8), withName("b"))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.width)
		require.Equal(t, "b", cfg.name)
		require.Equal(t, []string{"name", "width", "name"}, cfg.calls)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withWidth(0), withName("b"))
		require.EqualError(t, err, "width must be positive")
		require.Equal(t, "a", cfg.name)
		require.Equal(t, []string{"name"}, cfg.calls)
	})

	t.Run("No options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})

	t.Run("Nil option is skipped", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withWidth(4)))
		require.Equal(t, 4, cfg.width)
	})
}
