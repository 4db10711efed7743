package cli

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

var versionDetails bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the mcmaps version. With --details, also print the manifest
schema this build writes, the world oracle it can search with, and the
toolchain and commit it was built from.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("mcmaps version %s\n", version)
		if !versionDetails {
			return
		}

		oracle := deps.Oracle
		if oracle == "" {
			oracle = "unknown"
		}
		cmd.Printf("  Schema:   v%d\n", domain.LatestSchemaVersion)
		cmd.Printf("  Oracle:   %s\n", oracle)
		cmd.Printf("  Go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		if rev := vcsRevision(); rev != "" {
			cmd.Printf("  Commit:   %s\n", rev)
		}
	},
}

// vcsRevision returns the short commit stamped by the go tool, with a
// "-dirty" suffix for modified trees.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "-dirty"
			}
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	return rev + dirty
}

func init() {
	versionCmd.Flags().BoolVarP(&versionDetails, "details", "d", false, "print build details")
	rootCmd.AddCommand(versionCmd)
}
