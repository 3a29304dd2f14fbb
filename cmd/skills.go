package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ism7788/math-practice/internal/catalog"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		banks, _, err := buildRegistry(cmd)
		if err != nil {
			return err
		}

		grade, _ := cmd.Flags().GetInt("grade")
		skills := catalog.Skills()
		if grade > 0 {
			skills = catalog.ByGrade(grade)
		}

		for _, s := range skills {
			gen := ""
			if !banks.Registered(s.ID) {
				gen = "  (default bank)"
			}
			fmt.Printf("%-28s grade %d  %s%s\n", s.ID, s.Grade, s.Title, gen)
		}
		return nil
	},
}

func init() {
	skillsCmd.Flags().Int("grade", 0, "Only list skills for this grade")
}
