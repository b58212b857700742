package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/playsketch-cli/pkg/export"
	"github.com/user/playsketch-cli/pkg/timeutil"
	"github.com/user/playsketch-cli/play"
)

var exportCmd = &cobra.Command{
	Use:   "export <pdf|gif> <play-file>",
	Short: "Export a play to PDF or animated GIF",
	Long: `Render every frame of a play and write it as a PDF with one page per frame
or as an animated GIF. The output defaults to {export.dir}/{play name}.{format}.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(args[0])
		if err != nil {
			return err
		}
		p, err := play.LoadFile(args[1])
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		scale, _ := cmd.Flags().GetFloat64("scale")
		intervalStr, _ := cmd.Flags().GetString("interval")

		if output == "" {
			output = export.BuildExportPath(cfg.Export.Dir, p.Name, format)
		}
		if scale <= 0 {
			scale = cfg.Export.Scale
		}
		interval := cfg.Export.GIFInterval
		if intervalStr != "" {
			interval, err = timeutil.ParseDuration(intervalStr)
			if err != nil {
				return fmt.Errorf("invalid --interval: %w", err)
			}
		}

		opts := export.Options{Scale: scale, Interval: interval}
		err = export.File(cmd.Context(), p, format, output, opts, func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rRendering frame %d/%d", done, total)
		})
		fmt.Fprintln(os.Stderr)
		if err != nil {
			logger.Error().Err(err).Str("path", output).Msg("export failed")
			return err
		}
		logger.Info().Str("path", output).Str("format", string(format)).Int("frames", p.Len()).Msg("export complete")

		fmt.Printf("Exported %d frames to %s\n", p.Len(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "Output file path")
	exportCmd.Flags().Float64P("scale", "s", 0, "Pixels per court unit (default from config)")
	exportCmd.Flags().StringP("interval", "i", "", "GIF frame delay, e.g. 750ms, 1.5 or 0:02 (default from config)")
}
