package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/recipe-search/api/version"
)

func runVersionArgs(t *testing.T, args ...string) string {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"version"}, args...))

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	t.Run("detailed", func(t *testing.T) {
		out := runVersionArgs(t, "--short=false", "--json=false")
		assert.Contains(t, out, "Recipe Search")
		assert.Contains(t, out, "Git Commit:")
		assert.Contains(t, out, "OS/Arch:")
	})

	t.Run("short", func(t *testing.T) {
		out := runVersionArgs(t, "--short", "--json=false")
		assert.Equal(t, "v"+Version+"\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out := runVersionArgs(t, "--short=false", "--json")

		var info version.Info
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, buildInfo(), info)
	})
}

func TestVersionCommandFlags(t *testing.T) {
	versionCmd, _, err := NewRootCmd().Find([]string{"version"})
	require.NoError(t, err)

	for _, name := range []string{"short", "json"} {
		assert.NotNil(t, versionCmd.Flags().Lookup(name), "flag %s", name)
	}
}
