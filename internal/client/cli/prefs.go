package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkovalenko/crewdesk/internal/client/models"
)

func (a *App) Prefs(ctx context.Context) error {
	p := a.prefs.Current()
	theme := "light"
	if p.DarkMode {
		theme = "dark"
	}
	fmt.Printf("theme: %s, font size: %s (x%.2f)\n", theme, p.FontSize, p.FontSize.Factor())
	return nil
}

func (a *App) ToggleDark(ctx context.Context) error {
	next := !a.prefs.Current().DarkMode
	a.prefs.SetDarkMode(ctx, next)
	return a.Prefs(ctx)
}

func (a *App) SetFont(ctx context.Context) error {
	size, err := getSimpleText(a.reader, "Font size (small/normal/large)", os.Stdout)
	if err != nil {
		return err
	}

	fs := models.FontSize(size)
	if !fs.Valid() {
		fmt.Println("Unknown size; pick small, normal, or large.")
		return nil
	}
	a.prefs.SetFontSize(ctx, fs)
	return a.Prefs(ctx)
}
