package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ByLCY/zlabel/binding"
	"github.com/ByLCY/zlabel/dsl"
	"github.com/ByLCY/zlabel/layout"
	zplrenderer "github.com/ByLCY/zlabel/renderer/zpl"
)

// compileOpts holds the flags of the compile command.
type compileOpts struct {
	data   string // data file bound to ${...} placeholders
	output string // output path, "-" for stdout
	debug  string // layout debug JSON path
	header bool   // force ^PW/^LL
}

func newCompileCmd() *cobra.Command {
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a label description into ZPL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "data file (.json, .yaml or .toml)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "-", "output file")
	cmd.Flags().StringVar(&opts.debug, "debug", "", "write the layout state as JSON to this path")
	cmd.Flags().BoolVar(&opts.header, "header", false, "emit ^PW/^LL for every label")

	return cmd
}

// runCompile 串联解析、布局与输出。
func runCompile(cmd *cobra.Command, input string, opts compileOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	prog := newProgress(logger)

	var data any
	if opts.data != "" {
		var err error
		if data, err = binding.Load(opts.data); err != nil {
			return err
		}
	}

	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("无法打开描述文件 %s: %w", input, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(input, file)
	if err != nil {
		return fmt.Errorf("解析描述文件失败: %w", err)
	}

	result, err := layout.Build(doc, data, layout.BuildOptions{
		Canvas: cfg.Label,
		Logger: logger,
		Debug:  layout.DebugOptions{States: opts.debug != ""},
	})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if opts.debug != "" {
		if err := os.MkdirAll(filepath.Dir(opts.debug), 0o755); err != nil {
			return fmt.Errorf("创建调试目录失败: %w", err)
		}
		if err := layout.WriteDebugJSON(result, opts.debug); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	out := cfg.Output
	out.Header = out.Header || opts.header
	code, err := zplrenderer.NewRenderer(out, logger).Render(result)
	if err != nil {
		return fmt.Errorf("生成 ZPL 失败: %w", err)
	}
	if err := writeOutput(cmd, opts.output, code); err != nil {
		return err
	}
	prog.done("compiled", "file", input, "labels", len(result.Labels))
	return nil
}
