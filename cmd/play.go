package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/playsketch-cli/play"
)

var newCmd = &cobra.Command{
	Use:   "new <play-file>",
	Short: "Create an empty play file",
	Long:  `Create a play file with a single blank frame. The format follows the extension: .yaml or .yml writes YAML, anything else JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		name, _ := cmd.Flags().GetString("name")
		courtStr, _ := cmd.Flags().GetString("court")
		force, _ := cmd.Flags().GetBool("force")

		court := cfg.Court
		if courtStr != "" {
			var err error
			court, err = play.ParseCourt(courtStr)
			if err != nil {
				return err
			}
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", path)
		}

		p := play.New(name, court)
		if err := play.SaveFile(path, p); err != nil {
			return err
		}
		logger.Info().Str("path", path).Str("court", string(court)).Msg("play created")

		fmt.Printf("Created %s (%s, %s court)\n", path, p.Name, p.Court)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <play-file>",
	Short: "Print the contents of a play file",
	Long:  `Print every frame of a play: its players, their positions and the lines drawn from them.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := play.LoadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s court, %d frames)\n", p.Name, p.Court, p.Len())
		for i := range p.Frames {
			printFrame(i, &p.Frames[i])
		}
		return nil
	},
}

// printFrame writes the players and lines of a frame as tables.
func printFrame(i int, f *play.Frame) {
	fmt.Println()
	fmt.Printf("Frame %d\n", i+1)
	if f.Notes != "" {
		for _, line := range strings.Split(f.Notes, "\n") {
			fmt.Printf("  %s\n", line)
		}
	}

	if len(f.Players) == 0 {
		fmt.Println("  No players.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Label\tTeam\tX\tY\tBall")
		fmt.Fprintln(w, "  -----\t----\t-\t-\t----")
		for _, pl := range f.Players {
			team := "defense"
			if pl.IsOffense {
				team = "offense"
			}
			ball := ""
			if pl.HasBall {
				ball = "yes"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.0f\t%s\n", pl.Label, team, pl.X, pl.Y, ball)
		}
		w.Flush()
	}

	if len(f.Lines) == 0 {
		return
	}
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Type\tFrom\tTo\tPoints")
	fmt.Fprintln(w, "  ----\t----\t--\t------")
	for _, a := range f.Lines {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\n", a.Type, playerLabel(f, f.AnchorOf(a)), playerLabel(f, f.TargetOf(a)), len(a.Points))
	}
	w.Flush()
}

func playerLabel(f *play.Frame, i int) string {
	if i < 0 {
		return "-"
	}
	return f.Players[i].Label
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)

	newCmd.Flags().StringP("name", "n", "", "Play name")
	newCmd.Flags().StringP("court", "c", "", "Court type (half or full)")
	newCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}
