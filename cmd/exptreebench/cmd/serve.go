package cmd

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the Prometheus metrics registry over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		http.Handle("/metrics", promhttp.Handler())
		fmt.Printf("serving metrics on %s/metrics\n", serveAddr)
		return http.ListenAndServe(serveAddr, nil)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9090", "address to serve /metrics on")
	rootCmd.AddCommand(serveCmd)
}
