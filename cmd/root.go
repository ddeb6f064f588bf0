package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/capybara-brain346/decision-tree-engine/internal/buildinfo"
	"github.com/capybara-brain346/decision-tree-engine/internal/logging"
)

// global flags
var userConfig string

var rootCmd = &cobra.Command{
	Use:   "dectree",
	Short: fmt.Sprintf("Decision tree rule engine (version: %s, commit: %s)", buildinfo.Version, buildinfo.CommitHash),
	Long: `dectree evaluates records of named attributes against decision trees.
	Business rules (loan approval, risk tiering, fraud screening) are encoded
	as trees of decision and outcome nodes instead of nested conditionals,
	and every tree can be dumped as structured text for inspection.`,
	Version: buildinfo.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, configErr := initConfig()
		logging.Init(nil)
		if configErr != nil { // handle error after logging is initialized
			return configErr
		}
		if configPath != "" {
			log.Debug().Msgf("using config file: %s", configPath)
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("execution failed")
		os.Exit(1)
	}
}

func init() {
	// setup pre-flag logger
	logging.InitDefault()

	rootCmd.PersistentFlags().StringVar(&userConfig, "user-config", "",
		"User configuration file for default values (default is $HOME/.dectree.yaml)")

	bindLogFlags(rootCmd.PersistentFlags())

	viper.SetEnvPrefix("DECTREE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))

	viper.AutomaticEnv()

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func initConfig() (string, error) {
	// reads in config file and ENV variables if set.
	if userConfig != "" {
		viper.SetConfigFile(userConfig)
	} else {
		// search order: current dir, $HOME, XDG config
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}

		config, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(config + "/dectree")
		}

		viper.SetConfigType("yaml")
		viper.SetConfigName(".dectree")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundError) {
			return "", err
		}
	} else {
		return viper.ConfigFileUsed(), nil
	}

	return "", nil
}
