package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ism7788/math-practice/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	banks, src, err := buildRegistry(cmd)
	if err != nil {
		return err
	}
	skill, _ := cmd.Flags().GetString("skill")
	return tui.Run(banks, src, skill)
}

func init() {
	playCmd.Flags().String("skill", "", "Skill ID to play (skips the picker)")
	rootCmd.Flags().String("skill", "", "Skill ID to play (skips the picker)")
}
