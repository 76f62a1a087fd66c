package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"exptree/cmd/exptreebench/internal/metrics"
	"exptree/pkg/pathtrie"
)

type contextKey string

const (
	metricsKey contextKey = "metrics"
	labelsKey  contextKey = "labels"
)

var rootCmd = &cobra.Command{
	Use:   "exptreebench",
	Short: "Benchmark driver for the exponential tree index",
	Long: `exptreebench drives the in-memory exponential tree index with
synthetic insert and lookup workloads, exporting Prometheus metrics and
labeling each run by a path-trie key derived from its parameters.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		m := metrics.New()
		labels := pathtrie.New[string]()
		cmd.SetContext(context.WithValue(cmd.Context(), metricsKey, m))
		cmd.SetContext(context.WithValue(cmd.Context(), labelsKey, labels))
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func metricsFromContext(cmd *cobra.Command) *metrics.Metrics {
	m, _ := cmd.Context().Value(metricsKey).(*metrics.Metrics)
	return m
}

func labelsFromContext(cmd *cobra.Command) *pathtrie.Trie[string] {
	t, _ := cmd.Context().Value(labelsKey).(*pathtrie.Trie[string])
	return t
}
