package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"week-tracker/internal/errors"
)

func TestPrescan(t *testing.T) {
	t.Run("reads overrides among unknown task flags", func(t *testing.T) {
		o, err := prescan([]string{"--A", "120", "--show", "--targets", "t.yaml", "--store=sqlite", "--reset-B=2", "--no-color"})
		require.NoError(t, err)

		require.NotNil(t, o.TargetsFile)
		assert.Equal(t, "t.yaml", *o.TargetsFile)
		require.NotNil(t, o.Backend)
		assert.Equal(t, "sqlite", *o.Backend)
		require.NotNil(t, o.NoColor)
		assert.True(t, *o.NoColor)
		assert.Nil(t, o.StateFile)
		assert.Nil(t, o.MinBarWidth)
		assert.Nil(t, o.Verbose)
	})

	t.Run("numeric overrides", func(t *testing.T) {
		o, err := prescan([]string{"--min-bar-width", "48", "--verbose", "--state-file=/tmp/x.json"})
		require.NoError(t, err)

		assert.Equal(t, 48, *o.MinBarWidth)
		assert.True(t, *o.Verbose)
		assert.Equal(t, "/tmp/x.json", *o.StateFile)
	})

	t.Run("help is left to cobra", func(t *testing.T) {
		_, err := prescan([]string{"--help"})
		assert.NoError(t, err)
	})

	t.Run("bad override value", func(t *testing.T) {
		_, err := prescan([]string{"--min-bar-width=wide"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}
