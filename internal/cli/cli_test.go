package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `start,end,distance,time,accessible
Gordon Hall,Humanities,60,1,True
Humanities,Pollak Library,120,2,True
Gordon Hall,Pollak Library,"1,000",9,False
Kinesiology,Student Recreation Center,150,3,True
`

func writeFixture(t *testing.T) (dir, graph string) {
	t.Helper()
	dir = t.TempDir()
	graph = filepath.Join(dir, "campus.csv")
	require.NoError(t, os.WriteFile(graph, []byte(testCSV), 0o600))
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("logger:\n  level: error\n"), 0o600))
	return dir, graph
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	dir, graph := writeFixture(t)
	cfg := filepath.Join(dir, "config.yaml")

	out, err := run(t, "--config", cfg, "--graph", graph, "route", "Gordon Hall", "Pollak Library")
	require.NoError(t, err)
	assert.Contains(t, out, "Dijkstra: Gordon Hall → Pollak Library")
	assert.Contains(t, out, "Total Distance: 180.0 m")

	out, err = run(t, "--config", cfg, "--graph", graph, "route", "-a", "bfs", "Gordon Hall", "Pollak Library")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Distance: 1000.0 m")

	_, err = run(t, "--config", cfg, "--graph", graph, "route", "Gordon Hall", "Kinesiology")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = run(t, "--config", cfg, "--graph", graph, "route", "-a", "astar", "Gordon Hall", "Humanities")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "--graph", graph, "route", "--by", "stairs", "Gordon Hall", "Humanities")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "--graph", filepath.Join(dir, "missing.csv"), "route", "A", "B")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocationsCommand(t *testing.T) {
	dir, _ := writeFixture(t)
	out, err := run(t, "--config", filepath.Join(dir, "config.yaml"), "locations")
	require.NoError(t, err)
	assert.Contains(t, out, "15 locations")

	cat := filepath.Join(dir, "locations.yaml")
	require.NoError(t, os.WriteFile(cat, []byte("- {name: Hall, x: 1, y: 2}\n"), 0o600))
	out, err = run(t, "--config", filepath.Join(dir, "config.yaml"), "--catalog", cat, "locations")
	require.NoError(t, err)
	assert.Contains(t, out, "1 locations")
}

func TestValidateCommand(t *testing.T) {
	dir, graph := writeFixture(t)
	cfg := filepath.Join(dir, "config.yaml")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte(testCSV+"A,B,far,1,true\n"), 0o600))

	out, err := run(t, "--config", cfg, "validate", bad)
	require.NoError(t, err)
	assert.Contains(t, out, "5 rows, 4 loaded, 1 skipped")
	assert.Contains(t, out, "line 6")

	out, err = run(t, "--config", cfg, "--graph", graph, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "0 skipped")

	noCols := filepath.Join(dir, "nocols.csv")
	require.NoError(t, os.WriteFile(noCols, []byte("from,to\n"), 0o600))
	_, err = run(t, "--config", cfg, "validate", noCols)
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("search:\n  default_algorithm: astar\n"), 0o600))

	_, err := run(t, "--config", cfg, "locations")
	assert.Error(t, err)
}
