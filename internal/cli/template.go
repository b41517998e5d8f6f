package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/zlabel/label"
	zplrenderer "github.com/ByLCY/zlabel/renderer/zpl"
	"github.com/ByLCY/zlabel/templates"
)

// templateOpts holds the flags of the template command. Zero sizes fall
// back to the configuration.
type templateOpts struct {
	title, subtitle, info, barcode string
	centered                       bool
	width, height                  float64 // inches
	dpi                            int
	output                         string
}

func newTemplateCmd() *cobra.Command {
	var opts templateOpts

	cmd := &cobra.Command{
		Use:       "template [1|2]",
		Short:     "Print a ready-made label template as ZPL",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"1", "2"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "title text")
	cmd.Flags().StringVar(&opts.subtitle, "subtitle", "", "subtitle text")
	cmd.Flags().StringVar(&opts.info, "info", "", "info line (template 2)")
	cmd.Flags().StringVar(&opts.barcode, "barcode", "", "barcode data")
	cmd.Flags().BoolVar(&opts.centered, "centered", true, "center the texts (template 1)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "label width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "label height in inches")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "printhead resolution in dots per inch")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "-", "output file")

	return cmd
}

func runTemplate(cmd *cobra.Command, which string, opts templateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	canvas := cfg.Label
	if opts.width > 0 {
		canvas.Width = opts.width
	}
	if opts.height > 0 {
		canvas.Height = opts.height
	}
	if opts.dpi > 0 {
		canvas.DPI = opts.dpi
	}

	l := label.New(canvas.Width, canvas.Height, canvas.DPI)
	l.Name = "template" + which
	if !l.Valid() {
		return fmt.Errorf("标签尺寸无效: %gin x %gin @ %d dpi", canvas.Width, canvas.Height, canvas.DPI)
	}
	if opts.barcode == "" {
		logger.Warn("barcode data is empty", "template", which)
	}

	var code string
	switch which {
	case "1":
		code = templates.Template1(l, opts.centered, opts.title, opts.subtitle, opts.barcode)
	case "2":
		code = templates.Template2(l, opts.title, opts.subtitle, opts.info, opts.barcode)
	default:
		return fmt.Errorf("未知模板 %q", which)
	}

	var buf bytes.Buffer
	zplrenderer.NewRenderer(cfg.Output, logger).WriteFormat(&buf, l.Width(), l.Height(), code)
	logger.Debug("template rendered", "template", which, "width", l.Width(), "height", l.Height())
	return writeOutput(cmd, opts.output, buf.Bytes())
}
