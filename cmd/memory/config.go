package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var flagWriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in memory.yaml. With --write the file is saved to
~/.memory/configs/memory.yaml, unless one already exists there.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVarP(&flagWriteConfig, "write", "w", false, "write the defaults to the user config path")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagWriteConfig {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}
	path := config.UserConfigPath()
	if path == "" {
		return errors.New("cannot resolve home directory")
	}
	if err := writeDefaultConfig(path); err != nil {
		return err
	}
	logger.Info("default config written", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// writeDefaultConfig creates path with the built-in defaults and refuses to
// overwrite an existing file.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config: %s already exists", path)
		}
		return fmt.Errorf("config: %w", err)
	}
	if _, err := f.Write(config.DefaultYAML()); err != nil {
		f.Close()
		return fmt.Errorf("config: write: %w", err)
	}
	return f.Close()
}
