package main

import (
	"fmt"

	coastify "github.com/driftlab/go-coastify"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <image_path>",
	Short: "Classify a coastal photo into a pollution category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()

		embedder, err := coastify.NewClipServer(ctx, serverURL, clipModel)
		if err != nil {
			return err
		}
		classifier, err := coastify.New(ctx, coastify.Config{Embedder: embedder})
		if err != nil {
			return err
		}

		result := classifier.ClassifyFile(ctx, args[0])
		fmt.Printf("%s %s (%.1f%%)\n", result.Icon, result.Name, result.Confidence*100)
		fmt.Printf("label=%s confidence=%.4f color=%s\n", result.Label, result.Confidence, result.Color)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
