package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ism7788/math-practice/internal/auth"
	"github.com/ism7788/math-practice/internal/rng"
	"github.com/ism7788/math-practice/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Bootstrap the admin account and HQ school",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = envOr("MATHP_DB", "mathp.db")
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg := store.SeedConfig{
			AdminEmail:    envOr("ADMIN_EMAIL", "admin@math-practice.local"),
			AdminPassword: envOr("ADMIN_PASSWORD", "ChangeMe123!"),
			SchoolName:    envOr("ADMIN_SCHOOL_NAME", "Math-practice HQ"),
		}

		res, err := st.Seed(rng.New(), cfg, auth.HashPassword)
		if err != nil {
			return err
		}

		fmt.Println("Seeded admin:", res.AdminEmail)
		fmt.Printf("School: %s • code: %s\n", res.SchoolName, res.SchoolCode)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("db", "", "Path to the SQLite database (overrides MATHP_DB)")
}
