package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yaoapp/agenda/share"
)

var printAllVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: L("Show version"),
	Long:  L("Show version"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(versionText(printAllVersion))
	},
}

func init() {
	versionCmd.PersistentFlags().BoolVarP(&printAllVersion, "all", "", false, L("Print all version information"))
}

// versionText the version line, or the build details with all.
// PRVERSION is "<commit>-<build time>" in release builds.
func versionText(all bool) string {
	if !all {
		return share.VERSION + "\n"
	}

	commit, built, _ := strings.Cut(share.PRVERSION, "-")
	if built == "" {
		built = "unknown"
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "%s %s\n", share.BUILDNAME, share.VERSION)
	fmt.Fprintf(b, "  commit:    %s\n", commit)
	fmt.Fprintf(b, "  built:     %s\n", built)
	fmt.Fprintf(b, "  go:        %s\n", runtime.Version())
	fmt.Fprintf(b, "  platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return b.String()
}
