package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/address-book/internal/addressbook"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the address book operations on sample contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(stdout, logger)
		},
	}
}

// runDemo builds a small book, edits it and prints each step
func runDemo(w io.Writer, logger *zap.Logger) error {
	book := addressbook.NewAddressBook(logger)

	john, err := addressbook.NewRecord("John")
	if err != nil {
		return err
	}
	if err := john.AddPhone("1234567890"); err != nil {
		return err
	}
	if err := john.AddPhone("5555555555"); err != nil {
		return err
	}
	book.AddRecord(john)

	jane, err := addressbook.NewRecord("Jane")
	if err != nil {
		return err
	}
	if err := jane.AddPhone("9876543210"); err != nil {
		return err
	}
	book.AddRecord(jane)

	fmt.Fprintln(w, book.ListRecords())

	found, ok := book.Find("John")
	if !ok {
		return fmt.Errorf("contact John not found")
	}
	if err := found.EditPhone("1234567890", "1112223333"); err != nil {
		return err
	}
	fmt.Fprintln(w, found)

	if phone, ok := found.FindPhone("5555555555"); ok {
		fmt.Fprintf(w, "%s: %s\n", found.Name(), phone)
	}

	// 2025-03-27 is a Thursday: Jane's Saturday birthday moves to Monday,
	// John's moves past the end of the week.
	if err := john.AddBirthday("05.04.2000"); err != nil {
		return err
	}
	if err := jane.AddBirthday("29.03.2000"); err != nil {
		return err
	}
	ref := time.Date(2025, time.March, 27, 0, 0, 0, 0, time.UTC)
	for _, g := range addressbook.UpcomingBirthdays(book, ref, addressbook.DefaultLookaheadDays) {
		fmt.Fprintf(w, "Congratulate %s on %s\n", g.Name, g.GreetingDate)
	}

	book.Delete("Jane")
	fmt.Fprintln(w, book.ListRecords())

	return nil
}
