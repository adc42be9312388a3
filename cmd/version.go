package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/killallgit/recipe-search/api/version"
)

// Build variables, set with -ldflags "-X github.com/killallgit/recipe-search/cmd.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the Recipe Search build information: version, git commit,
build time and the Go runtime it was compiled with.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().Bool("json", false, "print build information as JSON")
}

func buildInfo() version.Info {
	return version.Info{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := buildInfo()

	if short, _ := cmd.Flags().GetBool("short"); short {
		_, err := fmt.Fprintf(out, "v%s\n", info.Version)
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintln(out, "Recipe Search")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Version:\tv%s\n", info.Version)
	fmt.Fprintf(w, "Git Commit:\t%s\n", info.GitCommit)
	fmt.Fprintf(w, "Build Time:\t%s\n", info.BuildTime)
	fmt.Fprintf(w, "Go Version:\t%s\n", runtime.Version())
	fmt.Fprintf(w, "OS/Arch:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
	return w.Flush()
}
