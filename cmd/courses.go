package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses <schedule.csv>",
	Short: "List the courses found in a schedule export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}

		courses := s.ListCourses()
		if len(courses) == 0 {
			return fmt.Errorf("no courses found in %s", args[0])
		}

		for _, c := range courses {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
