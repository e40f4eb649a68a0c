package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"myfinlab"
	"myfinlab/config"
	"myfinlab/internal/common"
)

// initFromConfig loads the given configuration (or the defaults) and performs
// the one-time namespace initialization.
func initFromConfig(configPath string) error {
	cfg := config.GetDefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	myfinlab.Init(cfg)
	return nil
}

// ShowStatus displays the availability of each wrapped library.
func ShowStatus(configPath string) error {
	if err := initFromConfig(configPath); err != nil {
		return err
	}

	common.CLILogger.Info("Wrapped Library Status (myfinlab %s)", myfinlab.GetVersion())
	common.CLILogger.Info("%s", strings.Repeat("=", 50))

	statuses := myfinlab.Libraries()
	availableCount := 0

	for _, status := range statuses {
		statusIcon := "❌"
		statusText := "Unavailable"

		if status.Available {
			statusIcon = "✅"
			statusText = "Available"
			availableCount++
		}

		common.CLILogger.Info("%s %s: %s", statusIcon, status.Name, statusText)

		if status.Available {
			common.CLILogger.Info("   Submodules: %d", status.Submodules)
		}
		if status.Diagnostic != "" {
			common.CLILogger.Info("   Diagnostic: %s", status.Diagnostic)
		}

		common.CLILogger.Info("")
	}

	common.CLILogger.Info("📊 Summary: %d/%d libraries available", availableCount, len(statuses))

	return nil
}

// moduleListing is the JSON shape of one namespace entry.
type moduleListing struct {
	Name    string `json:"name"`
	Library string `json:"library"`
}

// ShowModules lists the submodules reachable through the unified namespace.
func ShowModules(configPath, library string, formatJSON bool) error {
	if err := initFromConfig(configPath); err != nil {
		return err
	}

	listings := make([]moduleListing, 0)
	for _, m := range myfinlab.Modules() {
		if library != "" && m.Library != library {
			continue
		}
		listings = append(listings, moduleListing{Name: m.Name, Library: m.Library})
	}

	if formatJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(listings)
	}

	if len(listings) == 0 {
		common.CLILogger.Warn("No submodules reachable")
		return nil
	}

	for _, l := range listings {
		fmt.Printf("%-28s %s\n", l.Name, l.Library)
	}
	common.CLILogger.Info("%d submodules reachable", len(listings))

	return nil
}

// GenerateConfig writes the default configuration file.
func GenerateConfig(outPath string) error {
	if outPath == "" {
		outPath = config.GetDefaultConfigPath()
	}

	if err := config.GenerateDefaultConfig(outPath); err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	common.CLILogger.Info("✅ Wrote default configuration to %s", outPath)
	return nil
}
