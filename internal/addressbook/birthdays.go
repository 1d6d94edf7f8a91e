package addressbook

import (
	"time"

	"github.com/username/address-book/pkg/dateutil"
)

// DefaultLookaheadDays is the greeting window used when none is configured
const DefaultLookaheadDays = 7

// Greeting is a contact to congratulate and the weekday to do it on
type Greeting struct {
	Name         string    `json:"name" yaml:"name"`
	GreetingDate string    `json:"greeting_date" yaml:"greeting_date"` // YYYY.MM.DD
	Date         time.Time `json:"-" yaml:"-"`
}

// BirthdayPlanner computes greeting dates for upcoming birthdays
type BirthdayPlanner struct {
	LookaheadDays int
	LeapDay       dateutil.LeapDayPolicy
}

// Upcoming returns greetings whose weekend-adjusted date falls in
// [ref, ref+LookaheadDays]. Records without a birthday are skipped.
// Results follow the book's iteration order.
func (p BirthdayPlanner) Upcoming(book *AddressBook, ref time.Time) []Greeting {
	ref = dateutil.CivilDate(ref)
	greetings := []Greeting{}

	for _, r := range book.Records() {
		birthday, ok := r.Birthday()
		if !ok {
			continue
		}

		projected := dateutil.ProjectOntoYear(birthday.Date(), ref.Year(), p.LeapDay)
		greetOn := dateutil.NextWeekday(projected)
		if !dateutil.InWindow(greetOn, ref, p.LookaheadDays) {
			continue
		}

		greetings = append(greetings, Greeting{
			Name:         r.Name(),
			GreetingDate: dateutil.FormatGreeting(greetOn),
			Date:         greetOn,
		})
	}

	return greetings
}

// UpcomingBirthdays is Upcoming with the default leap-day policy
func UpcomingBirthdays(book *AddressBook, ref time.Time, lookaheadDays int) []Greeting {
	return BirthdayPlanner{LookaheadDays: lookaheadDays}.Upcoming(book, ref)
}
