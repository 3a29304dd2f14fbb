package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ism7788/math-practice/internal/player"
)

var previewCmd = &cobra.Command{
	Use:   "preview <skill-id>",
	Short: "Generate a bank and print it without playing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		banks, _, err := buildRegistry(cmd)
		if err != nil {
			return err
		}

		bank, err := banks.BankFor(args[0])
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(bank)
		}

		for i, it := range bank {
			tier := player.BucketFor(it.Difficulty)
			fmt.Printf("%2d. [%s %d] %s\n", i+1, tier, it.Difficulty, it.Stem.Plain)
			for ci, c := range it.Choices {
				marker := "   "
				if it.IsCorrect(ci) {
					marker = " * "
				}
				label := c.Plain
				if label == "" {
					label = c.TeX
				}
				fmt.Printf("   %s%c) %s\n", marker, 'A'+ci, label)
			}
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().Bool("json", false, "Print the bank as JSON")
}
