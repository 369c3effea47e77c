package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lodgenet/internal/config"
	"github.com/katalvlaran/lodgenet/internal/httpapi"
)

func testConfig() config.Config {
	return config.Config{Catalog: config.CatalogFile, CatalogFile: "testdata/lodges.yaml", HTTPAddr: ":0"}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestNodes(t *testing.T) {
	out, err := run(t, "nodes", "--year", "2005")
	require.NoError(t, err)
	assert.Contains(t, out, "Rifugio Alpha")
	assert.Contains(t, out, "Rifugio Gamma")
	assert.NotContains(t, out, "Bivacco Delta")
	assert.Contains(t, out, "3 lodges in the 2005 network")
}

func TestNodes_JSON(t *testing.T) {
	out, err := run(t, "nodes", "--year", "1999", "--json")
	require.NoError(t, err)

	var resp httpapi.NodesResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1999, resp.Year)
	assert.Empty(t, resp.Nodes)
}

func TestDegree(t *testing.T) {
	out, err := run(t, "degree", "2", "--year", "2005")
	require.NoError(t, err)
	assert.Contains(t, out, "degree 2")

	_, err = run(t, "degree", "99", "--year", "2005")
	require.ErrorContains(t, err, "lodge 99 not found")

	_, err = run(t, "degree", "two")
	require.ErrorContains(t, err, "not an integer")
}

func TestComponents(t *testing.T) {
	out, err := run(t, "components", "--year", "2010")
	require.NoError(t, err)
	assert.Contains(t, out, "1 components")
	assert.Contains(t, out, "[1 2 3 4]")
}

func TestReachable_JSON(t *testing.T) {
	out, err := run(t, "reachable", "1", "--year", "2005", "--json")
	require.NoError(t, err)

	var resp httpapi.ReachableResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	ids := []int{}
	for _, l := range resp.Reachable {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int{2, 3}, ids)
}

func TestFlagsOverrideConfig(t *testing.T) {
	_, err := run(t, "nodes", "--file", "testdata/missing.yaml")
	require.Error(t, err)

	_, err = run(t, "nodes", "--catalog", "sqlite")
	require.ErrorIs(t, err, config.ErrUnknownCatalog)
}

func TestGenerate_ThenQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	_, err := run(t, "generate", "--shape", "path:3", "--shape", "cycle:4", "--shape", "isolated:2", "-o", path)
	require.NoError(t, err)

	out, err := run(t, "components", "--file", path, "--year", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "2 components")
	assert.Contains(t, out, "[4 5 6 7]")

	out, err = run(t, "nodes", "--file", path, "--year", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "7 lodges in the 2000 network")
}

func TestGenerate_BadShape(t *testing.T) {
	_, err := run(t, "generate", "--shape", "blob:3")
	require.ErrorContains(t, err, "invalid shape")

	_, err = run(t, "generate", "--shape", "grid:3")
	require.ErrorContains(t, err, "invalid shape")
}
