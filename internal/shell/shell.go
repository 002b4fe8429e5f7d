// Package shell implements the interactive menu loop around the tracker.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"consumption/internal/app"
	"consumption/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var menuPattern = regexp.MustCompile(`^[1-8]$`)

// LineReader is the port for reading user input. The binary uses a
// liner-backed implementation; tests script their input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// Shell drives the tracker through a numbered terminal menu.
type Shell struct {
	tracker      *app.TrackerService
	totals       *app.TotalsService
	reader       LineReader
	out          io.Writer
	startupDelay time.Duration
}

// New creates a Shell writing its output to out.
func New(tracker *app.TrackerService, totals *app.TotalsService, reader LineReader, out io.Writer, startupDelay time.Duration) *Shell {
	return &Shell{
		tracker:      tracker,
		totals:       totals,
		reader:       reader,
		out:          out,
		startupDelay: startupDelay,
	}
}

// Run executes the menu loop until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	if s.startupDelay > 0 {
		time.Sleep(s.startupDelay)
	}

	fmt.Fprintln(s.out, titleStyle.Render("=== Consumption Tracker ==="))

	for {
		s.printMenu()
		choice, err := s.reader.ReadLine("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}
		choice = strings.TrimSpace(choice)
		if !menuPattern.MatchString(choice) {
			fmt.Fprintln(s.out, "Please enter a number between 1 and 8.")
			continue
		}

		switch choice {
		case "1":
			err = s.addItem(ctx, domain.CategoryFood)
		case "2":
			err = s.addItem(ctx, domain.CategoryDrink)
		case "3":
			err = s.deleteItem(ctx, domain.CategoryFood)
		case "4":
			err = s.deleteItem(ctx, domain.CategoryDrink)
		case "5":
			s.listItems(ctx, domain.CategoryFood)
		case "6":
			s.listItems(ctx, domain.CategoryDrink)
		case "7":
			err = s.showTotals(ctx)
		case "8":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprint(s.out, `
1) Add food
2) Add drink
3) Delete food
4) Delete drink
5) List food
6) List drinks
7) Show totals
8) Exit
`)
}

func (s *Shell) addItem(ctx context.Context, category domain.Category) error {
	name, err := s.promptName()
	if err != nil {
		return err
	}
	calories, err := s.promptCalories()
	if err != nil {
		return err
	}

	var item domain.Consumable
	switch category {
	case domain.CategoryDrink:
		answer, err := s.reader.ReadLine("Is it sugary? (yes/no): ")
		if err != nil {
			return err
		}
		item = domain.NewDrink(name, calories, strings.EqualFold(strings.TrimSpace(answer), "yes"))
	default:
		item = domain.NewFood(name, calories)
	}

	s.tracker.Add(ctx, item)
	return nil
}

func (s *Shell) promptName() (string, error) {
	for {
		name, err := s.reader.ReadLine("Enter name: ")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			fmt.Fprintln(s.out, "Name must not be empty.")
			continue
		}
		return capitalize(name), nil
	}
}

func (s *Shell) promptCalories() (int64, error) {
	for {
		text, err := s.reader.ReadLine("Enter calories: ")
		if err != nil {
			return 0, err
		}
		calories, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil || calories < 0 {
			fmt.Fprintln(s.out, "Calories must be a non-negative number.")
			continue
		}
		return calories, nil
	}
}

func (s *Shell) deleteItem(ctx context.Context, category domain.Category) error {
	if len(s.itemsOf(ctx, category)) == 0 {
		fmt.Fprintln(s.out, noticeStyle.Render(fmt.Sprintf("No %s items to delete.", category)))
		return nil
	}

	name, err := s.reader.ReadLine("Enter name to delete: ")
	if err != nil {
		return err
	}
	s.tracker.DeleteByName(ctx, strings.TrimSpace(name))
	return nil
}

func (s *Shell) listItems(ctx context.Context, category domain.Category) {
	items := s.itemsOf(ctx, category)
	if len(items) == 0 {
		fmt.Fprintf(s.out, "No %s items tracked yet.\n", category)
		return
	}
	for _, item := range items {
		line := item.Label()
		if item.Category == domain.CategoryDrink && item.Sugary {
			line += " (Sugary)"
		}
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) showTotals(ctx context.Context) error {
	sum, err := s.totals.Summary(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Food: %d cal\n", sum.FoodCalories)
	fmt.Fprintf(s.out, "Drinks: %d cal\n", sum.DrinkCalories)
	fmt.Fprintf(s.out, "Grand Total: %d cal (limit %d)\n", sum.GrandTotal, sum.DailyLimit)
	if sum.OverLimit {
		fmt.Fprintln(s.out, warnStyle.Render(fmt.Sprintf(
			"⚠️ Grand Total: %d cal — you are over your daily limit by %d calories!",
			sum.GrandTotal, sum.Overage)))
	}
	return nil
}

func (s *Shell) itemsOf(ctx context.Context, category domain.Category) []domain.Consumable {
	var out []domain.Consumable
	for _, item := range s.tracker.Items(ctx) {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
