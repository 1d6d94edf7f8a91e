// Package assistant is a line-oriented command shell over one in-memory address book.
package assistant

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/address-book/internal/addressbook"
)

// Shell messages printed around the command loop
const (
	Prompt   = "Enter a command: "
	Greeting = "Welcome to the assistant bot!"
	Farewell = "Good bye!"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	args  int // minimum number of arguments
	run   func(args []string) (string, error)
}

// Assistant dispatches shell commands to an address book
type Assistant struct {
	book     *addressbook.AddressBook
	planner  addressbook.BirthdayPlanner
	today    func() time.Time
	logger   *zap.Logger
	commands map[string]command
}

// New creates an Assistant. today supplies the reference date for "birthdays".
func New(book *addressbook.AddressBook, planner addressbook.BirthdayPlanner, today func() time.Time, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Assistant{
		book:    book,
		planner: planner,
		today:   today,
		logger:  logger,
	}
	a.commands = map[string]command{
		"hello":         {"hello", 0, a.hello},
		"help":          {"help", 0, a.help},
		"add":           {"add <name> <phone>", 2, a.add},
		"change":        {"change <name> <old phone> <new phone>", 3, a.change},
		"phone":         {"phone <name>", 1, a.phone},
		"remove-phone":  {"remove-phone <name> <phone>", 2, a.removePhone},
		"delete":        {"delete <name>", 1, a.deleteContact},
		"all":           {"all", 0, a.all},
		"add-birthday":  {"add-birthday <name> <DD.MM.YYYY>", 2, a.addBirthday},
		"show-birthday": {"show-birthday <name>", 1, a.showBirthday},
		"birthdays":     {"birthdays [days]", 0, a.birthdays},
	}
	return a
}

// Run reads commands from in until EOF or an exit command.
// The prompt is written before each line only when prompt is true.
func (a *Assistant) Run(in io.Reader, out io.Writer, prompt bool) error {
	fmt.Fprintln(out, Greeting)

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, Prompt)
		}
		if !scanner.Scan() {
			break
		}

		reply, quit := a.Handle(scanner.Text())
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Handle executes one input line and returns the reply and whether to stop
func (a *Assistant) Handle(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "close", "exit", "quit":
		return Farewell, true
	}

	cmd, ok := a.commands[name]
	if !ok {
		return "Invalid command. Type 'help' to list commands.", false
	}
	if len(args) < cmd.args {
		return "Usage: " + cmd.usage, false
	}

	reply, err := cmd.run(args)
	if err != nil {
		a.logger.Debug("Command failed", zap.String("command", name), zap.Error(err))
		return a.explain(cmd, err), false
	}
	return reply, false
}

func (a *Assistant) explain(cmd command, err error) string {
	var verr *addressbook.ValidationError
	var nferr *addressbook.NotFoundError
	switch {
	case errors.Is(err, errUsage):
		return "Usage: " + cmd.usage
	case errors.As(err, &verr):
		return capitalize(verr.Reason) + "."
	case errors.As(err, &nferr):
		return fmt.Sprintf("%s %s not found.", capitalize(nferr.Field), nferr.Value)
	}
	return err.Error()
}

func (a *Assistant) record(name string) (*addressbook.Record, error) {
	r, ok := a.book.Find(name)
	if !ok {
		return nil, &addressbook.NotFoundError{Field: "contact", Value: name}
	}
	return r, nil
}

func (a *Assistant) hello([]string) (string, error) {
	return "How can I help you?", nil
}

func (a *Assistant) help([]string) (string, error) {
	usages := make([]string, 0, len(a.commands)+1)
	for _, cmd := range a.commands {
		usages = append(usages, "  "+cmd.usage)
	}
	usages = append(usages, "  close | exit")
	sort.Strings(usages)
	return "Commands:\n" + strings.Join(usages, "\n"), nil
}

func (a *Assistant) add(args []string) (string, error) {
	name, phones := args[0], args[1:]

	if r, ok := a.book.Find(name); ok {
		for _, p := range phones {
			if _, err := addressbook.NewPhone(p); err != nil {
				return "", err
			}
		}
		for _, p := range phones {
			if err := r.AddPhone(p); err != nil {
				return "", err
			}
		}
		return "Contact updated.", nil
	}

	r, err := addressbook.NewRecord(name)
	if err != nil {
		return "", err
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return "", err
		}
	}
	a.book.AddRecord(r)
	return "Contact added.", nil
}

func (a *Assistant) change(args []string) (string, error) {
	r, err := a.record(args[0])
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func (a *Assistant) phone(args []string) (string, error) {
	r, err := a.record(args[0])
	if err != nil {
		return "", err
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phones.", r.Name()), nil
	}
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", r.Name(), strings.Join(out, "; ")), nil
}

func (a *Assistant) removePhone(args []string) (string, error) {
	r, err := a.record(args[0])
	if err != nil {
		return "", err
	}
	if err := r.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return "Phone removed.", nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if _, err := a.record(args[0]); err != nil {
		return "", err
	}
	a.book.Delete(args[0])
	return "Contact deleted.", nil
}

func (a *Assistant) all([]string) (string, error) {
	return a.book.ListRecords(), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	r, err := a.record(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	r, err := a.record(args[0])
	if err != nil {
		return "", err
	}
	b, ok := r.Birthday()
	if !ok {
		return fmt.Sprintf("No birthday set for %s.", r.Name()), nil
	}
	return fmt.Sprintf("%s: %s", r.Name(), b), nil
}

func (a *Assistant) birthdays(args []string) (string, error) {
	planner := a.planner
	if len(args) > 0 {
		days, err := strconv.Atoi(args[0])
		if err != nil || days < 0 {
			return "", errUsage
		}
		planner.LookaheadDays = days
	}

	greetings := planner.Upcoming(a.book, a.today())
	if len(greetings) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days.", planner.LookaheadDays), nil
	}
	lines := make([]string, len(greetings))
	for i, g := range greetings {
		lines[i] = fmt.Sprintf("%s: %s", g.Name, g.GreetingDate)
	}
	return strings.Join(lines, "\n"), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
