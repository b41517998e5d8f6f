// Package cli implements the zlabel command-line interface.
//
// Commands:
//   - compile: compile a label description file into ZPL
//   - template: print one of the ready-made label templates
//
// Every command accepts --config (a zlabel.toml file) and --verbose. The
// logger and the loaded configuration travel through the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ByLCY/zlabel/config"
	"github.com/ByLCY/zlabel/zpl"
)

const defaultConfigPath = "zlabel.toml"

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the values shown by --version, usually injected through
// ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd(os.Stderr).ExecuteContext(context.Background())
}

// newRootCmd builds the command tree. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "zlabel",
		Short:        "zlabel compiles label descriptions into ZPL",
		Long:         `zlabel turns declarative label descriptions into ZPL II command streams for Zebra thermal printers.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, err := resolveLevel(cfg, verbose)
			if err != nil {
				return fmt.Errorf("日志级别 %q 无效: %w", cfg.Log.Level, err)
			}
			logger := newLogger(logOut, level)
			zpl.SetLogger(logger)

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("zlabel %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "configuration file (TOML)")

	root.AddCommand(newCompileCmd())
	root.AddCommand(newTemplateCmd())

	return root
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入输出文件 %s 失败: %w", path, err)
	}
	return nil
}
