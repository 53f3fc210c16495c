package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"roomrenamer/pkg/config"
	"roomrenamer/pkg/exporter"
	"roomrenamer/pkg/session"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// roomField binds one editable room name to its form input.
type roomField struct {
	room string
	name string
}

// RunScheduleTUI runs the interactive flow: pick a schedule and a course,
// rename its rooms and the course, then export the calendar.
func RunScheduleTUI() error {
	fmt.Println(accentStyle.Render("Welcome to RoomRenamer!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	schedulePath := cfg.LastSchedule
	pathForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schedule export (.csv)").
				Description("Path of the semicolon-separated file downloaded from the university portal.").
				Value(&schedulePath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path cannot be empty")
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("file not found")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := pathForm.Run(); err != nil {
		return err
	}

	var s *session.Session
	_ = spinner.New().
		Title("Loading schedule...").
		Action(func() {
			s, err = session.FromConfig(cfg)
			if err == nil {
				err = s.LoadSchedule(schedulePath)
			}
		}).
		Run()

	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error loading the file: %v", err)))
		return nil
	}

	cfg.LastSchedule = schedulePath
	_ = config.Save(cfg)

	courses := s.ListCourses()
	if len(courses) == 0 {
		fmt.Println(errorStyle.Render("No courses found in this schedule!"))
		return nil
	}

	var courseOptions []huh.Option[string]
	for _, c := range courses {
		courseOptions = append(courseOptions, huh.NewOption(c, c))
	}

	var subject string
	courseForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select the course to export").
				Options(courseOptions...).
				Value(&subject).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := courseForm.Run(); err != nil {
		return err
	}

	return editAndExport(s, subject)
}

func editAndExport(s *session.Session, subject string) error {
	rooms := s.ListRoomsForCourse(subject)
	courseMap := s.CourseMap()

	customName := subject
	fields := make([]*roomField, 0, len(rooms))
	for _, room := range rooms {
		if name, ok := courseMap[room]; ok {
			customName = name
		}
		fields = append(fields, &roomField{room: room, name: s.DisplayRoomName(room)})
	}

	inputs := []huh.Field{
		huh.NewInput().
			Title("Custom course name").
			Description("Used in the title of every event of this course.").
			Value(&customName),
	}
	for _, f := range fields {
		inputs = append(inputs, huh.NewInput().
			Title(f.room).
			Description("Display name of this room").
			Value(&f.name))
	}

	var action string
	inputs = append(inputs, huh.NewSelect[string]().
		Title("Next step").
		Options(
			huh.NewOption("Export calendar (.ics)", "export"),
			huh.NewOption("Save names only", "save"),
		).
		Value(&action))

	if err := huh.NewForm(huh.NewGroup(inputs...)).WithTheme(GetTheme()).Run(); err != nil {
		return err
	}

	roomNames := make(map[string]string, len(fields))
	for _, f := range fields {
		if name := strings.TrimSpace(f.name); name != "" {
			roomNames[f.room] = name
		}
	}
	if _, err := s.UpdateRoomMap(roomNames); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error saving the room map: %v", err)))
		return nil
	}
	if _, err := s.SetCourseName(subject, strings.TrimSpace(customName)); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error saving the course name: %v", err)))
		return nil
	}

	if action == "save" {
		fmt.Println(accentStyle.Render("\n✅ Room map saved."))
		return nil
	}

	outputFile := exporter.DefaultOutputPath(s.SchedulePath(), subject)
	outputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := outputForm.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	path, err := s.ExportCalendar(subject, outputFile)
	if err != nil {
		if errors.Is(err, session.ErrDestinationUnresolved) {
			fmt.Println(errorStyle.Render("No destination file selected"))
			return nil
		}
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error exporting the calendar: %v", err)))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Calendar exported to %s", path)))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d rooms, course shown as %q", len(rooms), customName)))
	return nil
}
