package main

import (
	"fmt"

	coastify "github.com/driftlab/go-coastify"
	"github.com/spf13/cobra"
)

var geoCmd = &cobra.Command{
	Use:   "geo <image_path>",
	Short: "Extract the embedded geotag from a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		coord := coastify.ExtractGeoFile(args[0])
		if !coord.Present {
			fmt.Println("no geotag")
			return nil
		}
		fmt.Printf("latitude=%.6f longitude=%.6f\n", coord.Latitude, coord.Longitude)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(geoCmd)
}
