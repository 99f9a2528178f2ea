package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/CiteGraph-Analytics/internal/application/analysis"
	"github.com/turtacn/CiteGraph-Analytics/pkg/types/common"
)

// newRankCmd builds the rank subcommand: run the full pipeline and print the
// ranked report.
func newRankCmd() *cobra.Command {
	var (
		measureFlag string
		topK        int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank patents by centrality",
		Long: "Builds the citation graph from the configured edge list, computes the\n" +
			"selected centrality measure, and prints the top-ranked patents joined\n" +
			"with their grant year and assignee name.",
		Example: `  citegraph rank --edges cite75_99.txt --attributes apat63_99.txt --assignees aconame.txt
  citegraph rank -m eigenvector -k 25 --edges cite75_99.txt
  citegraph rank -m indegree -o json --edges cite75_99.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			measure, err := common.ParseMeasure(strings.ToLower(measureFlag))
			if err != nil {
				return err
			}

			pipeline := analysis.New(cliCtx.Config, cliCtx.Logger, cliCtx.Collector())
			res, err := pipeline.RunFromFiles(cmd.Context(), measure, topK)
			if err != nil {
				return err
			}

			if res.Warning != nil {
				PrintWarning(cmd, res.Warning.Error())
			}
			if res.Report.Omitted > 0 {
				PrintWarning(cmd, fmt.Sprintf("%d ranked patent(s) missing from the attribute table were omitted", res.Report.Omitted))
			}

			if strings.ToLower(cliCtx.OutputFormat) == "json" {
				return printJSON(cmd, res)
			}
			return PrintResult(cmd, res.Report)
		},
	}

	cmd.Flags().StringVarP(&measureFlag, "measure", "m", string(common.MeasurePageRank),
		"centrality measure (indegree, eigenvector, pagerank)")
	cmd.Flags().IntVarP(&topK, "top", "k", 0, "report length (0 uses the configured default)")

	return cmd
}
