package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repository = "s0up4200/tmdbctl"

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information injected through ldflags.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

func userAgent() string {
	return fmt.Sprintf("tmdbctl/%s (%s/%s)", version, runtime.GOOS, runtime.GOARCH)
}

// releaseVersion returns the running version when it is a release build.
func releaseVersion() (semver.Version, bool) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}

func noConfig(*cobra.Command, []string) error { return nil }

var versionCmd = &cobra.Command{
	Use:                "version",
	Short:              "Print version information",
	Args:               cobra.NoArgs,
	PersistentPreRunE:  noConfig,
	PersistentPostRunE: noConfig,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		if v, ok := releaseVersion(); ok {
			fmt.Fprintf(out, "tmdbctl v%s\n", v)
		} else {
			fmt.Fprintf(out, "tmdbctl %s\n", version)
		}
		fmt.Fprintf(out, "Built: %s\n", buildTime)
		fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

var updateCmd = &cobra.Command{
	Use:                "update",
	Short:              "Update tmdbctl to the latest release",
	Args:               cobra.NoArgs,
	PersistentPreRunE:  noConfig,
	PersistentPostRunE: noConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		current, ok := releaseVersion()
		if !ok {
			return fmt.Errorf("cannot update a development build (%s)", version)
		}

		ctx := cmd.Context()
		latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repository))
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
		if !found {
			return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
		}

		out := cmd.OutOrStdout()
		if latest.LessOrEqual(current.String()) {
			fmt.Fprintf(out, "Already up to date (v%s)\n", current)
			return nil
		}

		exe, err := selfupdate.ExecutablePath()
		if err != nil {
			return fmt.Errorf("could not locate executable path: %w", err)
		}

		fmt.Fprintf(out, "Updating v%s -> v%s...\n", current, latest.Version())
		if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}

		fmt.Fprintf(out, "✓ Updated to v%s\n", latest.Version())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, updateCmd)
}
