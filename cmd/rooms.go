package cmd

import (
	"fmt"
	"os"
	"strings"

	"roomrenamer/pkg/mapstore"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms <schedule.csv>",
	Short: "List and rename the rooms of a course",
	Long: `List the normalized rooms used by a course together with their saved display names.

Names are stored in the installation-wide room map. Keys can be full location
names (e.g. "C.Didat.Morgagni", which then shortens every room in that
building) or normalized rooms as listed by this command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, _ := cmd.Flags().GetString("course")
		sets, _ := cmd.Flags().GetStringArray("set")
		exportSheet, _ := cmd.Flags().GetString("export-sheet")
		importSheet, _ := cmd.Flags().GetString("import-sheet")

		s, err := openSession(args[0])
		if err != nil {
			return err
		}

		partial := make(map[string]string)
		for _, kv := range sets {
			room, name, ok := strings.Cut(kv, "=")
			if !ok || strings.TrimSpace(room) == "" {
				return fmt.Errorf("invalid --set value %q, expected ROOM=NAME", kv)
			}
			partial[strings.TrimSpace(room)] = strings.TrimSpace(name)
		}

		if importSheet != "" {
			file, err := os.Open(importSheet)
			if err != nil {
				return fmt.Errorf("failed to open room sheet: %w", err)
			}
			defer file.Close()

			imported, err := mapstore.ReadSheet(file)
			if err != nil {
				return err
			}
			for k, v := range imported {
				partial[k] = v
			}
		}

		if len(partial) > 0 {
			path, err := s.UpdateRoomMap(partial)
			if err != nil {
				return fmt.Errorf("failed to save room map: %w", err)
			}
			fmt.Printf("✅ Saved %d room names to %s\n", len(partial), path)
		}

		rooms := s.ListRoomsForCourse(course)
		if len(rooms) == 0 {
			return fmt.Errorf("no rooms found for course %q", course)
		}

		if exportSheet != "" {
			file, err := os.Create(exportSheet)
			if err != nil {
				return fmt.Errorf("failed to create room sheet: %w", err)
			}
			defer file.Close()

			if err := mapstore.WriteSheet(file, mapstore.SheetEntries(rooms, s.RoomMap())); err != nil {
				return err
			}
			fmt.Printf("Exported %d rooms to %s\n", len(rooms), exportSheet)
			return nil
		}

		printRooms(course, rooms, s.DisplayRoomName)
		return nil
	},
}

func printRooms(course string, rooms []string, display func(string) string) {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
	roomStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("Rooms for %s", course)))
	for _, room := range rooms {
		name := display(room)
		if name == room {
			fmt.Printf("• %s\n", room)
			continue
		}
		fmt.Printf("• %s %s\n", room, roomStyle.Render("→ "+name))
	}
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	roomsCmd.Flags().StringP("course", "c", "", "Course name as printed by 'roomrenamer courses'")
	roomsCmd.Flags().StringArrayP("set", "s", nil, "Rename a room or location (ROOM=NAME), repeatable")
	roomsCmd.Flags().String("export-sheet", "", "Write the rooms and their names to a CSV file for bulk editing")
	roomsCmd.Flags().String("import-sheet", "", "Merge room names from a CSV file (room,display)")
	roomsCmd.MarkFlagRequired("course")
}
