package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/playsketch-cli/db"
	"github.com/user/playsketch-cli/play"
)

var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Manage the play library",
	Long:    `Save, list, open, and delete plays in the local SQLite play library.`,
}

var libraryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved plays",
	Long:    `List every play in the library, most recently updated first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openLibrary(logger)
		if err != nil {
			return err
		}
		defer database.Close()

		plays, err := db.SelectPlays(database)
		if err != nil {
			return fmt.Errorf("failed to list plays: %w", err)
		}

		if len(plays) == 0 {
			fmt.Println("No plays in the library.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Name\tCourt\tFrames\tUpdated")
		fmt.Fprintln(w, "----\t-----\t------\t-------")
		for _, r := range plays {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Name, r.Court, r.FrameCount, r.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		w.Flush()
		return nil
	},
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <play-file>",
	Short: "Save a play file into the library",
	Long:  `Store a play file in the library under its play name, replacing any saved play with the same name. Use --name to store it under a different name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := play.LoadFile(args[0])
		if err != nil {
			return err
		}
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			p.Rename(name)
		}

		database, err := openLibrary(logger)
		if err != nil {
			return err
		}
		defer database.Close()

		id, err := db.SavePlay(database, p)
		if err != nil {
			return fmt.Errorf("failed to save play: %w", err)
		}
		logger.Info().Int64("id", id).Str("name", p.Name).Msg("play saved to library")

		fmt.Printf("Saved %q (%d frames)\n", p.Name, p.Len())
		return nil
	},
}

var libraryOpenCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Write a saved play to a file",
	Long:  `Write the saved play with the given name to a play file. The output defaults to {name}.json in the current directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openLibrary(logger)
		if err != nil {
			return err
		}
		defer database.Close()

		p, err := db.LoadPlay(database, args[0])
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = args[0] + ".json"
		}
		if err := play.SaveFile(output, p); err != nil {
			return err
		}

		fmt.Printf("Wrote %q to %s\n", p.Name, output)
		return nil
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved play",
	Long:    `Delete a play from the library by name. Prompts for confirmation unless --force is used.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		force, _ := cmd.Flags().GetBool("force")

		database, err := openLibrary(logger)
		if err != nil {
			return err
		}
		defer database.Close()

		// Fetch the play to display before deletion
		rec, err := db.SelectPlayByName(database, name)
		if err != nil {
			return err
		}

		fmt.Printf("Play %q (%s court, %d frames)\n", rec.Name, rec.Court, rec.FrameCount)

		// Prompt for confirmation unless --force
		if !force {
			fmt.Print("Are you sure you want to delete this play? [y/N] ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		if err := db.DeletePlay(database, rec.Name); err != nil {
			return fmt.Errorf("failed to delete play: %w", err)
		}
		logger.Info().Str("name", rec.Name).Msg("play deleted from library")

		fmt.Printf("Play %q deleted.\n", rec.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryOpenCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)

	librarySaveCmd.Flags().StringP("name", "n", "", "Save under this name")
	libraryOpenCmd.Flags().StringP("output", "o", "", "Output file path")
	libraryDeleteCmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
}
