package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token and cost totals per request purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.Events().StatsByPurpose(cmd.Context())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-16s %8s %7s %12s %12s %10s\n",
			"PURPOSE", "REQS", "ERRORS", "IN TOKENS", "OUT TOKENS", "COST")
		fmt.Println(strings.Repeat("─", 70))
		var reqs, errs int
		var in, out int64
		var cost float64
		for _, st := range stats {
			fmt.Printf("%-16s %8d %7d %12d %12d %10s\n",
				st.Purpose, st.Requests, st.Errors, st.InputTokens, st.OutputTokens,
				formatCost(st.CostUSD))
			reqs += st.Requests
			errs += st.Errors
			in += st.InputTokens
			out += st.OutputTokens
			cost += st.CostUSD
		}
		fmt.Println(strings.Repeat("─", 70))
		fmt.Printf("%-16s %8d %7d %12d %12d %10s\n", "total", reqs, errs, in, out, formatCost(cost))
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
}

func formatCost(usd float64) string {
	if usd == 0 {
		return "-"
	}
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
