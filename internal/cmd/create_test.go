package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyforge/cli/internal/cmdutil"
	"github.com/pyforge/cli/internal/config"
	oerrors "github.com/pyforge/cli/internal/errors"
)

func resetCreateState(t *testing.T) {
	t.Helper()
	orig := loadedConfig
	loadedConfig = &config.Config{}
	t.Cleanup(func() { loadedConfig = orig })
	// An empty env value resolves as unset.
	t.Setenv("PYFORGE_AUTHOR", "")
	t.Setenv("PYFORGE_LICENSE", "")
	t.Setenv("PYFORGE_PYTHON", "")
}

func runCreateCmd(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewCreateCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestNewCreateCmd(t *testing.T) {
	cmd := NewCreateCmd()

	assert.Equal(t, "create [name]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, flag := range []string{
		"kinds", "dir", "license", "author", "python",
		"git", "remote", "venv", "no-tests", "ci", "dry-run", "interactive",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %s", flag)
	}
}

func TestCreate_ScaffoldsLibrary(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()

	require.NoError(t, runCreateCmd(t, "acme", "-d", dir))

	sub := filepath.Join(dir, "acme", "acme")
	assert.FileExists(t, filepath.Join(dir, "acme", "README.md"))
	assert.FileExists(t, filepath.Join(sub, "pyproject.toml"))
	assert.FileExists(t, filepath.Join(sub, "src", "acme", "__init__.py"))
	assert.FileExists(t, filepath.Join(sub, "tests", "test_basic.py"))
	assert.FileExists(t, filepath.Join(sub, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(sub, "LICENSE"))
}

func TestCreate_LicenseFlagWritesLicense(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()

	require.NoError(t, runCreateCmd(t, "acme", "-d", dir, "--license", "MIT", "--author", "Ada Lovelace"))

	content, err := os.ReadFile(filepath.Join(dir, "acme", "acme", "LICENSE"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Ada Lovelace")
	assert.Contains(t, string(content), "MIT")
}

func TestCreate_MultiKindLayout(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()

	require.NoError(t, runCreateCmd(t, "acme", "-d", dir, "-k", "library", "-k", "cli"))

	assert.DirExists(t, filepath.Join(dir, "acme", "library"))
	assert.DirExists(t, filepath.Join(dir, "acme", "cli"))

	readme, err := os.ReadFile(filepath.Join(dir, "acme", "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "library, cli")
}

func TestCreate_DryRunWritesNothing(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()

	require.NoError(t, runCreateCmd(t, "acme", "-d", dir, "--dry-run"))

	assert.NoDirExists(t, filepath.Join(dir, "acme"))
}

func TestCreate_ExistingRootAborts(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "acme"), 0o755))

	err := runCreateCmd(t, "acme", "-d", dir)
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
}

func TestCreate_MissingName(t *testing.T) {
	resetCreateState(t)

	err := runCreateCmd(t, "-d", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project name required")
}

func TestCreate_RejectsPathSeparators(t *testing.T) {
	resetCreateState(t)

	err := runCreateCmd(t, "nested/name", "-d", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project name")
}

func TestCreate_RejectsBadPythonVersion(t *testing.T) {
	resetCreateState(t)

	err := runCreateCmd(t, "acme", "-d", t.TempDir(), "--python", "snake")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid python version")
}

func TestCreate_UnknownKindAborts(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()

	err := runCreateCmd(t, "acme", "-d", dir, "-k", "not-a-kind")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template kinds")
	assert.NoDirExists(t, filepath.Join(dir, "acme"))
}

func TestCreate_NoTestsSkipsMarker(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()

	require.NoError(t, runCreateCmd(t, "acme", "-d", dir, "-k", "flask", "--no-tests"))

	assert.NoDirExists(t, filepath.Join(dir, "acme", "acme", "tests"))
}

func TestCreate_CIWritesWorkflow(t *testing.T) {
	resetCreateState(t)
	dir := t.TempDir()

	require.NoError(t, runCreateCmd(t, "acme", "-d", dir, "--ci"))

	workflow := filepath.Join(dir, "acme", "acme", ".github", "workflows", "python-package.yml")
	content, err := os.ReadFile(workflow)
	require.NoError(t, err)
	assert.Contains(t, string(content), "python-version")
}

func TestResolveCreateValues(t *testing.T) {
	resetCreateState(t)
	t.Setenv("PYFORGE_AUTHOR", "Env Author")

	flags := &cmdutil.CreateFlags{}
	cmd := &cobra.Command{}
	flags.AddTo(cmd)
	require.NoError(t, cmd.Flags().Set("license", "MIT"))

	cfg := &config.Config{Author: "File Author", Python: "3.12"}
	values := resolveCreateValues(cmd, flags, cfg)

	assert.Equal(t, "MIT", values.License.Value)
	assert.Equal(t, config.SourceFlag, values.License.Source)

	assert.Equal(t, "Env Author", values.Author.Value)
	assert.Equal(t, config.SourceEnv, values.Author.Source)
	assert.Equal(t, "File Author", values.Author.Shadowed[config.SourceConfig])

	assert.Equal(t, "3.12", values.Python.Value)
	assert.Equal(t, config.SourceConfig, values.Python.Source)
}

func TestBoolSetting(t *testing.T) {
	t.Run("unchanged flag defers to config", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.Flags().Bool("venv", false, "")

		assert.True(t, boolSetting(cmd, "venv", false, true))
		assert.False(t, boolSetting(cmd, "venv", false, false))
	})

	t.Run("explicit flag wins over config", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.Flags().Bool("venv", false, "")
		require.NoError(t, cmd.Flags().Set("venv", "false"))

		assert.False(t, boolSetting(cmd, "venv", false, true))
	})
}
