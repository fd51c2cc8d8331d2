package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/transcript-api/pkg/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display detailed version information about the Transcript API.

This includes the version number, git commit hash, build time,
and runtime information.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
}

func runVersion(cmd *cobra.Command, args []string) {
	short, _ := cmd.Flags().GetBool("short")

	if short {
		fmt.Fprintf(cmd.OutOrStdout(), "v%s\n", version.Version)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Transcript API")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Version:      v%s\n", version.Version)
	fmt.Fprintf(out, "Git Commit:   %s\n", version.Commit)
	fmt.Fprintf(out, "Build Time:   %s\n", version.BuildTime)
	fmt.Fprintf(out, "Go Version:   %s\n", version.GoVersion)
	fmt.Fprintf(out, "OS/Arch:      %s/%s\n", version.OS, version.Arch)
	fmt.Fprintln(out, strings.Repeat("-", 40))
}
