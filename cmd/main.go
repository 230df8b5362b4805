package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           "interview-eval",
		Short:         "Interview evaluation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env in the current directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level, overrides LOG_LEVEL")

	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind config flag")
	}
	if err := viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind log-level flag")
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// @title Interview Evaluation API
// @version 1.0
// @description Rubric management and structured scoring of freelancer interviews. Interviewers fill in category scores, checkpoint results and red flag findings, then record a hiring recommendation.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
