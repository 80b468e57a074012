package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCatalogCommand_ExportReimportsWithoutGeneration(t *testing.T) {
	dir := t.TempDir()
	exported := filepath.Join(dir, "catalog.yaml")

	exportCfg := filepath.Join(dir, "export.yaml")
	writeFile(t, exportCfg, "catalog:\n  generate_count: 5\n  seed: 7\n")
	first := runCLI(t, "catalog", "--config", exportCfg, "--format", "yaml")
	require.NotEmpty(t, first)
	writeFile(t, exported, first)

	reimportCfg := filepath.Join(dir, "reimport.yaml")
	writeFile(t, reimportCfg, "catalog:\n  source: file\n  path: "+exported+"\n  generate_count: 0\n")
	second := runCLI(t, "catalog", "--config", reimportCfg, "--format", "yaml")

	require.Equal(t, first, second)
}

func TestCatalogCommand_RejectsUnknownFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"catalog", "--format", "xml"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.Error(t, rootCmd.ExecuteContext(context.Background()))
}
