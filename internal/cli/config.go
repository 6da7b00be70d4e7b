package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/manateeit/spec-kit-assistant/internal/config"
	clierrors "github.com/manateeit/spec-kit-assistant/internal/errors"
	"github.com/manateeit/spec-kit-assistant/internal/fsutil"
	"github.com/manateeit/spec-kit-assistant/internal/output"
)

type configInitFlags struct {
	project bool
	force   bool
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage spec-kit-assistant configuration",
		GroupID: GroupSetup,
		// Writing a fresh config must work even when the current one is broken.
		PersistentPreRunE: func(*cobra.Command, []string) error {
			a.applyColor()
			return nil
		},
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var f configInitFlags

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a commented default config file",
		Long: `Write the default configuration with every option documented.

By default the user config is written (` + "`<user config dir>/spec-kit-assistant/config.yml`" + `).
With --project the file goes to .spec-kit-assistant/config.yml in [directory]
(or the current directory). An existing file is only replaced with --force.`,
		Example: `  spec-kit-assistant config init
  spec-kit-assistant config init --project
  spec-kit-assistant config init ./my-project --project --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configInitPath(f.project, directoryArg(args))
			if err != nil {
				return err
			}

			exists, err := fsutil.Exists(path)
			if err != nil {
				return clierrors.ConfigWriteFailed(path, err)
			}
			if exists && !f.force {
				return clierrors.ConfigExists(path)
			}

			if err := writeDefaultConfig(path); err != nil {
				return clierrors.ConfigWriteFailed(path, err)
			}
			output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created config at %s", path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&f.project, "project", "p", false, "Write the project config instead of the user config")
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

// configInitPath returns the user config path, or the project config path under dir.
func configInitPath(project bool, dir string) (string, error) {
	if project {
		return filepath.Join(dir, config.ProjectConfigPath()), nil
	}
	path, err := config.UserConfigPath()
	if err != nil {
		return "", clierrors.HomeDirUnavailable(err)
	}
	return path, nil
}

// writeDefaultConfig writes the default configuration to the given path
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644)
}
