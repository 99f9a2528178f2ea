package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEdges = `"CITING","CITED"
B,A
C,A
A,B
D,C
`
	testAttributes = `"PATENT","GYEAR","GDATE","APPYEAR","COUNTRY","POSTATE","ASSIGNEE","ASSCODE"
A,1975,5485,1974,"US","MA",10,2
B,1976,5850,1975,"US","NY",20,2
C,1976,5850,1975,"US","CA",10,2
D,1977,6215,1976,"US","TX",30,2
`
	testAssignees = `"ASSIGNEE","COMPNAME"
10,"GENERAL ELECTRIC COMPANY"
20,"EASTMAN KODAK COMPANY"
`
)

// writeDataset writes the three test files and returns their paths.
func writeDataset(t *testing.T) (edges, attrs, assignees string) {
	t.Helper()
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		return p
	}
	return write("cite75_99.txt", testEdges),
		write("apat63_99.txt", testAttributes),
		write("aconame.txt", testAssignees)
}

// runCommand executes the root command with args and captures stdout/stderr.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRankCommandTableOutput(t *testing.T) {
	edges, attrs, assignees := writeDataset(t)

	stdout, _, err := runCommand(t,
		"rank", "-m", "indegree", "-k", "2",
		"--edges", edges, "--attributes", attrs, "--assignees", assignees)
	require.NoError(t, err)

	assert.Contains(t, stdout, "PATENT")
	assert.Contains(t, stdout, "SCORE")
	assert.Contains(t, stdout, "GENERAL ELECTRIC COMPANY")
	assert.Contains(t, stdout, "0.666667")
}

func TestRankCommandJSONOutput(t *testing.T) {
	edges, attrs, assignees := writeDataset(t)

	stdout, _, err := runCommand(t,
		"rank", "-m", "pagerank", "-k", "4", "-o", "json",
		"--edges", edges, "--attributes", attrs, "--assignees", assignees)
	require.NoError(t, err)

	var res struct {
		RunID   string `json:"run_id"`
		Measure string `json:"measure"`
		Report  struct {
			Rows []struct {
				PatentID string  `json:"patent_id"`
				Score    float64 `json:"score"`
			} `json:"rows"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "pagerank", res.Measure)
	assert.Len(t, res.Report.Rows, 4)
}

func TestRankCommandUnknownMeasure(t *testing.T) {
	edges, _, _ := writeDataset(t)

	_, _, err := runCommand(t, "rank", "-m", "betweenness", "--edges", edges)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown centrality measure")
}

func TestRankCommandMissingEdgeList(t *testing.T) {
	_, _, err := runCommand(t,
		"rank", "-m", "indegree",
		"--edges", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	edges, attrs, _ := writeDataset(t)

	stdout, _, err := runCommand(t, "stats", "--edges", edges, "--attributes", attrs)
	require.NoError(t, err)

	assert.Contains(t, stdout, "nodes")
	assert.Contains(t, stdout, "4")
	assert.Contains(t, stdout, "most cited")
	assert.Contains(t, stdout, "A")
}

func TestStatsCommandJSON(t *testing.T) {
	edges, _, _ := writeDataset(t)

	stdout, _, err := runCommand(t, "stats", "--edges", edges, "-o", "json")
	require.NoError(t, err)

	var stats struct {
		Nodes     int    `json:"nodes"`
		Edges     int    `json:"edges"`
		MostCited string `json:"most_cited"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &stats))
	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 4, stats.Edges)
	assert.Equal(t, "A", stats.MostCited)
}

func TestGetCLIContextWithoutInit(t *testing.T) {
	cmd := &cobra.Command{Use: "bare"}

	_, err := GetCLIContext(cmd)
	assert.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	out := FormatTable(
		[]string{"PATENT", "SCORE"},
		[][]string{
			{"3858241", "0.500000"},
			{"A", "0.250000"},
		},
	)

	lines := bytes.Split([]byte(out), []byte("\n"))
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, string(lines[0]), "PATENT")
	assert.Contains(t, string(lines[1]), "-------")
	// Columns are left-aligned to the widest cell.
	assert.Equal(t, len(lines[2]), len(lines[3]), "rows are padded to equal widths")
}

func TestFormatTableEmptyHeaders(t *testing.T) {
	assert.Empty(t, FormatTable(nil, [][]string{{"x"}}))
}

func TestPrintResultFallsBackToJSON(t *testing.T) {
	cmd := &cobra.Command{Use: "bare"}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, PrintResult(cmd, map[string]int{"nodes": 4}))
	assert.JSONEq(t, `{"nodes": 4}`, out.String())
}
