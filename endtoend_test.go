//go:build !(js || wasm)

package main

import (
	"bytes"
	"embed"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embeds the end-to-end programs, each name.lamb next to its expected output name.out
//
//go:embed testdata/e2e
var testSet embed.FS

func TestEndToEnd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	files, err := testSet.ReadDir("testdata/e2e")
	require.NoError(t, err)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".lamb") {
			continue
		}
		testFile(t, f.Name())
	}
}

func testFile(t *testing.T, name string) bool {
	return t.Run(name, func(t *testing.T) {
		program, err := testSet.ReadFile(path.Join("testdata/e2e", name))
		require.NoError(t, err)
		expected, err := testSet.ReadFile(path.Join("testdata/e2e", strings.TrimSuffix(name, ".lamb")+".out"))
		require.NoError(t, err)

		for _, compiled := range []string{"--compiled=false", "--compiled=true"} {
			stdout := bytes.Buffer{}
			stderr := bytes.Buffer{}
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)
			rootCmd.SetArgs([]string{"eval", "--color=false", "--show=both", compiled, string(program)})

			err := rootCmd.Execute()
			require.NoError(t, err, "%s failed:\n%s", compiled, stderr.String())
			assert.Equal(t, string(expected), stdout.String(), compiled)
		}
	})
}
