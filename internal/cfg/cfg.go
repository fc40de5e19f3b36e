// Package cfg provides configuration and command-line interface setup for fetcharr.
package cfg

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fetcharr/internal/command"
	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/keys"
	"fetcharr/internal/domain/mediacmd"
	"fetcharr/internal/server"
	"fetcharr/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "fetcharr",
	Short: "Fetcharr serves media metadata and downloads over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}

		logging.Level = viper.GetInt(keys.DebugLevel)
		if logFile := viper.GetString(keys.LogFile); logFile != "" {
			if err := logging.SetFile(logFile); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.StartServer(ctx, server.Config{
			Port:      viper.GetString(keys.Port),
			ToolPath:  viper.GetString(keys.ToolPath),
			StaticDir: viper.GetString(keys.StaticDir),
		}, command.NewRunner())
	},
}

// init sets the initial Viper settings.
func init() {
	// Listen port
	rootCmd.PersistentFlags().StringP(keys.Port, "p", consts.DefaultPort, "Port to serve the web interface on")
	viper.BindPFlag(keys.Port, rootCmd.PersistentFlags().Lookup(keys.Port))

	// Extraction tool path
	rootCmd.PersistentFlags().String(keys.ToolPath, mediacmd.YTDLP, "Path to the media extraction tool binary")
	viper.BindPFlag(keys.ToolPath, rootCmd.PersistentFlags().Lookup(keys.ToolPath))

	// Static frontend directory
	rootCmd.PersistentFlags().String(keys.StaticDir, consts.DefaultStaticDir, "Directory holding the compiled web UI")
	viper.BindPFlag(keys.StaticDir, rootCmd.PersistentFlags().Lookup(keys.StaticDir))

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debug level (0 - 2)")
	viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel))

	// Log file
	rootCmd.PersistentFlags().String(keys.LogFile, "", "Mirror log output into this file")
	viper.BindPFlag(keys.LogFile, rootCmd.PersistentFlags().Lookup(keys.LogFile))

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "static-dir" reads env STATIC_DIR
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
