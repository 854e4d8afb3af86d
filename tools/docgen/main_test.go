package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vsmcmd "github.com/laiwenqiang/vps-stock-monitor/cmd/vsm/cmd"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vsm")
	require.NoError(t, generate(vsmcmd.Root(), dir))

	for _, name := range []string{"vsm.md", "vsm_targets_create.md", "vsm_history_checks.md"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotContains(t, string(data), "Auto generated by spf13/cobra")
	}
}
