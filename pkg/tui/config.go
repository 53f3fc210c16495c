package tui

import (
	"fmt"
	"strings"

	"roomrenamer/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Room Map File", "roommap"),
						huh.NewOption("Set Room Rules File", "rules"),
						huh.NewOption("Set Calendar Product ID", "product"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "roommap":
			err = runSetPathTUI(cfg, "Room map file", "JSON file shared by every schedule you open.", &cfg.RoomMapPath)
		case "rules":
			err = runSetPathTUI(cfg, "Room rules file", "YAML file with extra room patterns, evaluated after the built-in ones.", &cfg.RulesPath)
		case "product":
			err = runSetPathTUI(cfg, "Calendar product ID", "Written in the PRODID line of exported calendars.", &cfg.ProductID)
		case "view":
			err = PrintConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

// PrintConfig prints the effective configuration, defaults included.
func PrintConfig(cfg *config.AppConfig) error {
	roomMap, err := cfg.RoomMapFilePath()
	if err != nil {
		return err
	}
	rules, err := cfg.RulesFilePath()
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.roomrenamer.json) ---"))
	fmt.Printf("Room Map: %s\n", roomMap)
	fmt.Printf("Room Rules: %s\n", rules)
	fmt.Printf("Product ID: %s\n", cfg.Product())
	fmt.Printf("UID Domain: %s\n", cfg.Domain())
	if cfg.LastSchedule == "" {
		fmt.Println("Last Schedule: Not set")
	} else {
		fmt.Printf("Last Schedule: %s\n", cfg.LastSchedule)
	}
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Println()
	return nil
}

func runSetPathTUI(cfg *config.AppConfig, title, description string, target *string) error {
	input := *target

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description + "\nLeave empty to use the default.").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	*target = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ %s saved.\n", title)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Azure", colorBlock(defaultAccent)), defaultAccent),
					huh.NewOption(fmt.Sprintf("%s Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetCustomTheme(defaultAccent))

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ The theme color is now saved.\n"))
	return nil
}
