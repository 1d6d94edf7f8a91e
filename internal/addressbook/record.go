package addressbook

import (
	"fmt"
	"strings"
)

// Record is one contact: a fixed name, phones in insertion order and an optional birthday
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for a valid name
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phone list
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates and appends a phone. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the first phone equal to raw
func (r *Record) RemovePhone(raw string) error {
	i := r.indexOf(raw)
	if i < 0 {
		return &NotFoundError{Field: "phone", Value: raw}
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone equal to oldRaw with newRaw in place.
// The record is unchanged on any error.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return &NotFoundError{Field: "phone", Value: oldRaw}
	}
	return r.phones[i].Set(newRaw)
}

// FindPhone returns the phone equal to raw, if present
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday sets or overwrites the birthday
func (r *Record) AddBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) indexOf(raw string) int {
	for i, p := range r.phones {
		if p.value == raw {
			return i
		}
	}
	return -1
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
}
