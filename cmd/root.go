package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ism7788/math-practice/internal/itemgen"
	"github.com/ism7788/math-practice/internal/rng"
)

var rootCmd = &cobra.Command{
	Use:   "mathp",
	Short: "Adaptive math practice",
	Long:  "Math-practice — adaptive multiple-choice drills for school math, in the terminal or over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("options", "", "Path to a generator options JSON file")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed the random source for reproducible banks")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildRegistry resolves the shared flags into a random source and a
// generator registry.
func buildRegistry(cmd *cobra.Command) (*itemgen.Registry, rng.Source, error) {
	optionsPath, _ := cmd.Flags().GetString("options")
	cfg, err := itemgen.LoadConfig(optionsPath)
	if err != nil {
		return nil, nil, err
	}

	src := rng.New()
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		src = rng.NewSeeded(seed)
	}
	return itemgen.NewRegistry(src, cfg), src, nil
}
