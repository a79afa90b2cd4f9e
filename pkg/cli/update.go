package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// repoSlug is the GitHub repository releases are published under.
const repoSlug = "Musiitwa-Joel/doclair-sub001"

// CheckForUpdates compares the running version against the newest published
// release and, after confirmation, replaces the current executable in place.
func CheckForUpdates() error {
	fmt.Printf("Current version: %s\n", Version)
	current, err := semver.Parse(strings.TrimPrefix(Version, "v"))
	if err != nil {
		return fmt.Errorf("could not parse current version %q: %w", Version, err)
	}

	latest, found, err := selfupdate.DetectLatest(repoSlug)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found || latest.Version.LTE(current) {
		fmt.Println("You are already running the latest version.")
		return nil
	}
	fmt.Printf("Latest version: %s\n", latest.Version)

	answer, err := PromptLine(fmt.Sprintf("A new version (%s) is available. Update now? (y/N): ", latest.Version))
	if err != nil {
		return fmt.Errorf("failed reading input: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		fmt.Println("Update cancelled.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Printf("Updated to version %s. Restart to use the new binary.\n", latest.Version)
	return nil
}
