package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyforge/cli/internal/cmdutil"
	oerrors "github.com/pyforge/cli/internal/errors"
)

// Test runs have no terminal on stdin, which is exactly the rejection
// path promptMissing must take.
func TestPromptMissing_RequiresTerminal(t *testing.T) {
	flags := &cmdutil.CreateFlags{}
	cmd := &cobra.Command{}
	flags.AddTo(cmd)

	name := ""
	values := createValues{}
	err := promptMissing(cmd, flags, &name, &values)

	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "terminal")
}
