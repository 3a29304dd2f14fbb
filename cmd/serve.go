package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ism7788/math-practice/internal/auth"
	"github.com/ism7788/math-practice/internal/itemgen"
	"github.com/ism7788/math-practice/internal/rng"
	"github.com/ism7788/math-practice/internal/server"
	"github.com/ism7788/math-practice/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := server.LoadConfig(configPath)
		if err != nil {
			return err
		}

		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		st, err := store.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer st.Close()

		tokens, err := auth.NewTokens(cfg.JWTSecret)
		if err != nil {
			return err
		}

		genCfg, err := itemgen.LoadConfig(cfg.OptionsPath)
		if err != nil {
			return err
		}
		banks := itemgen.NewRegistry(rng.New(), genCfg)

		return server.New(cfg, log, st, tokens, banks).ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
}
