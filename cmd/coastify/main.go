// Command coastify classifies coastal photos and extracts geotags from the
// command line. It is the reference consumer of the library; production
// callers embed the library behind their own report-intake API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	clipModel string
)

var rootCmd = &cobra.Command{
	Use:   "coastify",
	Short: "Zero-shot coastal pollution classification",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "CLIP sidecar base URL (default: http://localhost:8093)")
	rootCmd.PersistentFlags().StringVar(&clipModel, "model", "", "CLIP model name served by the sidecar")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
