// Package report renders greeting lists for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/username/address-book/internal/addressbook"
)

// Format is an output format for greeting lists
type Format string

// Supported output formats
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses text, yaml or json
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, yaml or json)", s)
}

// Printer writes greeting lists in one format
type Printer struct {
	w      io.Writer
	format Format
	icons  bool
}

// NewPrinter creates a Printer. Icons are used in text output only on a terminal.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format, icons: IsTTY(w)}
}

// Greetings writes the greeting list for a window of lookaheadDays days
func (p *Printer) Greetings(greetings []addressbook.Greeting, lookaheadDays int) error {
	switch p.format {
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(greetings); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(greetings); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	if len(greetings) == 0 {
		_, err := fmt.Fprintf(p.w, "No birthdays in the next %d days\n", lookaheadDays)
		return err
	}
	for _, g := range greetings {
		if _, err := fmt.Fprintf(p.w, "%s%s: %s\n", p.icon(), g.Name, g.GreetingDate); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) icon() string {
	if p.icons {
		return "🎂 "
	}
	return ""
}

// IsTTY reports whether w is connected to a terminal
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
