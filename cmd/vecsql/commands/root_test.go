package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, dsnFlag, logLevel = "", "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "[1, 2, 3]", "--dim=3")
	require.NoError(t, err)
	assert.Equal(t, "[1.0,2.0,3.0]\n", out)

	out, err = run(t, "parse", "[0.5]", "--dim=-1")
	require.NoError(t, err)
	assert.Equal(t, "[0.5]\n", out)

	_, err = run(t, "parse", "[1, 2, 3]", "--dim=2")
	assert.EqualError(t, err, "vector: mismatched dimension, expected 2, found 3")
}

func TestTypmodCommand(t *testing.T) {
	out, err := run(t, "typmod", "1536")
	require.NoError(t, err)
	assert.Equal(t, "1536\tvector(1536)\n", out)

	_, err = run(t, "typmod", "3", "4")
	assert.EqualError(t, err, "vector: expected 1 type modifier, got 2")
}

func TestDistanceCommand(t *testing.T) {
	out, err := run(t, "distance", "[1, 2, 3]", "[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = run(t, "distance", "--metric=l2", "[0, 0]", "[3, 4]")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	_, err = run(t, "distance", "--metric=cosine", "[1, 2]", "[1]")
	assert.EqualError(t, err, "vector: mismatched dimension, expected 2, found 1")
}

func TestFunctionsCommand(t *testing.T) {
	out, err := run(t, "functions")
	require.NoError(t, err)
	assert.Contains(t, out, "vector_input(text, integer) -> vector")
	assert.Contains(t, out, "vector_cosine_distance(vector, vector) -> real")
}

func TestExecCommand(t *testing.T) {
	out, err := run(t, "exec", "SELECT vector_dims('[1, 2]') AS dims, vector_output(vector_input('[3]', 1)) AS v")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"dims", "v"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2", "[3.0]"}, strings.Fields(lines[1]))
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "vecsql.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
database:
  dsn: `+filepath.Join(dir, "docs.sqlite")+`
logging:
  level: error
store:
  table: items
  dimension: 2
`), 0o644))

	_, err := run(t, "--config", cfg, "store", "add", "--id=a", "--content=east", "[1, 0]")
	require.NoError(t, err)
	_, err = run(t, "--config", cfg, "store", "add", "--id=b", "--content=north", "[0, 1]")
	require.NoError(t, err)
	_, err = run(t, "--config", cfg, "store", "add", "[1, 2, 3]")
	assert.ErrorContains(t, err, "mismatched dimension, expected 2, found 3")

	out, err := run(t, "--config", cfg, "store", "search", "--k=1", "[0.9, 0.1]")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a", strings.Fields(lines[1])[0])

	_, err = run(t, "--config", cfg, "store", "remove", "a")
	require.NoError(t, err)
	out, err = run(t, "--config", cfg, "store", "search", "--k=1", "[0.9, 0.1]")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "b", strings.Fields(lines[1])[0])
}
