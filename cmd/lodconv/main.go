// lodconv converts LoD2.2 building surface models (OBJ) into
// flat-roofed prismatic LoD1.2 models.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chazu/lodconv/pkg/convert"
	"github.com/chazu/lodconv/pkg/geom"
	"github.com/chazu/lodconv/pkg/height"
	"github.com/chazu/lodconv/pkg/snapshot"
)

var (
	inputPath   string
	outputPath  string
	verbose     bool
	snapshotDir string
	heightMode  string
)

var rootCmd = &cobra.Command{
	Use:           "lodconv",
	Short:         "Convert LoD2.2 building models to LoD1.2",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a LoD2.2 OBJ model to a flat-roofed LoD1.2 OBJ model",
	Args:  cobra.NoArgs,
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input OBJ file path (LoD2.2)")
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output OBJ file path (LoD1.2)")
	convertCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose progress output")
	convertCmd.Flags().StringVar(&snapshotDir, "snapshot-dir", "", "write STL snapshots of pipeline checkpoints to this directory")
	convertCmd.Flags().StringVar(&heightMode, "height-mode", "mean", "roof height estimator: mean or percentile")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stdout)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	opts := convert.Options{}
	switch heightMode {
	case "mean":
		opts.HeightMode = height.ModeWeightedMean
	case "percentile":
		opts.HeightMode = height.ModePercentile
	default:
		return fmt.Errorf("unknown height mode %q (want mean or percentile)", heightMode)
	}

	if snapshotDir != "" {
		viz, err := snapshot.New(snapshotDir)
		if err != nil {
			return err
		}
		opts.Visualizer = viz
	}

	log.Infof("converting %s to %s", inputPath, outputPath)
	if err := convert.File(inputPath, outputPath, geom.DefaultConfig(), opts); err != nil {
		return err
	}
	log.Info("conversion completed successfully")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
