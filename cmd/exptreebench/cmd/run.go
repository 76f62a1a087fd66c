package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"exptree/pkg/exptree"
)

var (
	runSeed  int64
	runCount int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Insert a synthetic int64 workload and report latency and memory",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := ksuid.New()
		m := metricsFromContext(cmd)
		labels := labelsFromContext(cmd)

		label := fmt.Sprintf("/bench/seed=%d/n=%d", runSeed, runCount)
		labels.Put(label, runID.String())

		tr := exptree.New[int64, int64]()
		rng := rand.New(rand.NewSource(runSeed))

		for i := 0; i < runCount; i++ {
			k := rng.Int63()
			v := rng.Int63()
			start := time.Now()
			_, err := tr.Put(k, v)
			m.OpDuration.WithLabelValues("put").Observe(time.Since(start).Seconds())
			if err != nil {
				m.OpsTotal.WithLabelValues("put", "error").Inc()
				m.OutOfMemory.Inc()
				return fmt.Errorf("run %s: put %d failed after %d/%d inserts: %w", runID, k, i, runCount, err)
			}
			m.OpsTotal.WithLabelValues("put", "ok").Inc()
		}

		m.BytesUsed.Set(float64(tr.BytesUsed()))
		m.BytesInCache.Set(float64(tr.BytesInCache()))

		fmt.Printf("run %s: %s inserted %d entries, bytes_used=%d bytes_in_cache=%d\n",
			runID, label, runCount, tr.BytesUsed(), tr.BytesInCache())
		return nil
	},
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "random seed for the synthetic workload")
	runCmd.Flags().IntVar(&runCount, "n", 10000, "number of key-value pairs to insert")
	rootCmd.AddCommand(runCmd)
}
