package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the norquiz version and the Go toolchain it was built with",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), resolveVersion())
	},
}

// resolveVersion prefers the ldflags value and falls back to the module
// version recorded by `go install`.
func resolveVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}

func printVersion(w io.Writer, v string) {
	fmt.Fprintf(w, "norquiz %s (%s %s/%s)\n", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
