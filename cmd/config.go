package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// initConfig wires viper so that flags can be supplied from
// $XDG_CONFIG_HOME/mcqgen/config.yaml or MCQGEN_* environment
// variables. Flags always win over both.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "mcqgen"))
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MCQGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine; the defaults cover everything.
	_ = viper.ReadInConfig()

	_ = viper.BindPFlags(rootCmd.Flags())
}
