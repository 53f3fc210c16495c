package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <schedule.csv>",
	Short: "Directly export a course calendar to an ICS file",
	Long: `Export the lessons of a single course to an ICS file without using the interactive TUI.

Without --output the calendar is written next to the schedule as
<schedule>_<Course_Name>.ics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, _ := cmd.Flags().GetString("course")
		output, _ := cmd.Flags().GetString("output")
		name, _ := cmd.Flags().GetString("name")
		stdout, _ := cmd.Flags().GetBool("stdout")

		s, err := openSession(args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("name") {
			if _, err := s.SetCourseName(course, name); err != nil {
				return fmt.Errorf("failed to save course name: %w", err)
			}
		}

		if stdout {
			fmt.Println(s.Calendar(course))
			return nil
		}

		var path string
		_ = spinner.New().
			Title(fmt.Sprintf("Exporting %s...", course)).
			Action(func() {
				path, err = s.ExportCalendar(course, output)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("failed to export calendar: %w", err)
		}

		fmt.Printf("Successfully exported %s to %s\n", course, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("course", "c", "", "Course to export, as printed by 'roomrenamer courses'")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (defaults to a file next to the schedule)")
	exportCmd.Flags().StringP("name", "n", "", "Custom course name used in event titles (saved for this schedule)")
	exportCmd.Flags().Bool("stdout", false, "Print the calendar instead of writing a file")
	exportCmd.MarkFlagRequired("course")
}
