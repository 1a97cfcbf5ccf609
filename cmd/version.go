package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is stamped via -ldflags at release time.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Хувилбар хэвлэх",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mcqgen", resolveVersion())
	},
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
