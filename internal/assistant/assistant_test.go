package assistant

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/username/address-book/internal/addressbook"
)

func newTestAssistant(t *testing.T) (*Assistant, *addressbook.AddressBook) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	book := addressbook.NewAddressBook(logger)
	today := func() time.Time { return time.Date(2025, time.March, 27, 10, 0, 0, 0, time.UTC) }
	planner := addressbook.BirthdayPlanner{LookaheadDays: addressbook.DefaultLookaheadDays}
	return New(book, planner, today, logger), book
}

func TestHandle(t *testing.T) {
	a, book := newTestAssistant(t)

	steps := []struct {
		line string
		want string
	}{
		{"hello", "How can I help you?"},
		{"", ""},
		{"fly", "Invalid command. Type 'help' to list commands."},
		{"add John", "Usage: add <name> <phone>"},
		{"add John 12345", "Phone number must be exactly 10 digits."},
		{"all", addressbook.EmptyBookMessage},
		{"add John 1234567890", "Contact added."},
		{"ADD John 5555555555", "Contact updated."},
		{"add Jane 9876543210", "Contact added."},
		{"phone John", "John: 1234567890; 5555555555"},
		{"change John 1234567890 1112223333", "Contact updated."},
		{"change John 0000000000 1112223333", "Phone 0000000000 not found."},
		{"change John 1112223333 abc", "Phone number must be exactly 10 digits."},
		{"change Bob 1112223333 1234567890", "Contact Bob not found."},
		{"all", "Contact name: John, phones: 1112223333; 5555555555\nContact name: Jane, phones: 9876543210"},
		{"remove-phone John 5555555555", "Phone removed."},
		{"remove-phone John 5555555555", "Phone 5555555555 not found."},
		{"show-birthday Jane", "No birthday set for Jane."},
		{"add-birthday Jane 2000-03-29", "Invalid date format, use DD.MM.YYYY."},
		{"add-birthday Jane 29.03.2000", "Birthday added."},
		{"add-birthday John 05.04.2000", "Birthday added."},
		{"show-birthday Jane", "Jane: 29.03.2000"},
		{"birthdays", "Jane: 2025.03.31"},
		{"birthdays 14", "John: 2025.04.07\nJane: 2025.03.31"},
		{"birthdays 1", "No birthdays in the next 1 days."},
		{"birthdays soon", "Usage: birthdays [days]"},
		{"delete Jane", "Contact deleted."},
		{"delete Jane", "Contact Jane not found."},
		{"phone John", "John: 1112223333"},
	}

	for _, step := range steps {
		reply, quit := a.Handle(step.line)

		assert.Equal(t, step.want, reply, "line %q", step.line)
		assert.False(t, quit, "line %q", step.line)
	}

	assert.Equal(t, 1, book.Len())
}

func TestHandleAddExistingIsAtomic(t *testing.T) {
	a, book := newTestAssistant(t)
	a.Handle("add John 1234567890")

	reply, _ := a.Handle("add John 5555555555 bad")

	assert.Equal(t, "Phone number must be exactly 10 digits.", reply)
	r, ok := book.Find("John")
	require.True(t, ok)
	assert.Len(t, r.Phones(), 1)
}

func TestHandleExit(t *testing.T) {
	a, _ := newTestAssistant(t)

	for _, line := range []string{"close", "exit", "  EXIT  "} {
		reply, quit := a.Handle(line)

		assert.Equal(t, Farewell, reply)
		assert.True(t, quit)
	}
}

func TestHandleHelp(t *testing.T) {
	a, _ := newTestAssistant(t)

	reply, _ := a.Handle("help")

	assert.True(t, strings.HasPrefix(reply, "Commands:\n"))
	assert.Contains(t, reply, "add-birthday <name> <DD.MM.YYYY>")
	assert.Contains(t, reply, "close | exit")
}

func TestRun(t *testing.T) {
	a, _ := newTestAssistant(t)
	in := strings.NewReader("hello\nadd John 1234567890\nall\nexit\nall\n")
	var out bytes.Buffer

	require.NoError(t, a.Run(in, &out, false))

	assert.Equal(t,
		Greeting+"\nHow can I help you?\nContact added.\nContact name: John, phones: 1234567890\n"+Farewell+"\n",
		out.String())
}

func TestRunPromptAndEOF(t *testing.T) {
	a, _ := newTestAssistant(t)
	var out bytes.Buffer

	require.NoError(t, a.Run(strings.NewReader("hello\n"), &out, true))

	assert.Equal(t, Greeting+"\n"+Prompt+"How can I help you?\n"+Prompt, out.String())
}

func TestNewWithoutLogger(t *testing.T) {
	book := addressbook.NewAddressBook(nil)
	today := func() time.Time { return time.Date(2025, time.March, 27, 0, 0, 0, 0, time.UTC) }
	a := New(book, addressbook.BirthdayPlanner{}, today, nil)

	reply, quit := a.Handle("change Bob 1234567890 1112223333")

	assert.Equal(t, "Contact Bob not found.", reply)
	assert.False(t, quit)
}
