// internal/cli/show_config.go
package wozeval

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements 'show config', which displays the merged
// configuration after flags have been applied over the config file.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := viper.ConfigFileUsed()
		if file == "" {
			fmt.Println("No config file loaded (using defaults).")
		} else {
			fmt.Printf("Config file: %s\n\n", file)
		}

		fmt.Println("Current configuration:")
		fmt.Printf("  Debug:     %v\n", viper.GetBool("debug"))
		fmt.Printf("  JSON Mode: %v\n", viper.GetBool("jsonMode"))
		fmt.Printf("  Workers:   %d\n", viper.GetInt("workers"))

		if cfg := GetConfig(); cfg != nil {
			fmt.Println()
			pp.Println(cfg)
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
