package addressbook

import (
	"strings"

	"go.uber.org/zap"
)

// EmptyBookMessage is what ListRecords returns when the book holds no records
const EmptyBookMessage = "No records"

// AddressBook owns records keyed by name. Iteration follows first-insertion order;
// replacing a record keeps its original position.
type AddressBook struct {
	records map[string]*Record
	order   []string
	logger  *zap.Logger
}

// NewAddressBook creates an empty address book
func NewAddressBook(logger *zap.Logger) *AddressBook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressBook{
		records: make(map[string]*Record),
		logger:  logger,
	}
}

// AddRecord stores the record under its name, replacing any previous record with that name
func (b *AddressBook) AddRecord(r *Record) {
	if r == nil {
		return
	}
	name := r.Name()
	if _, ok := b.records[name]; ok {
		b.logger.Debug("Record replaced", zap.String("name", name))
	} else {
		b.order = append(b.order, name)
		b.logger.Debug("Record added", zap.String("name", name))
	}
	b.records[name] = r
}

// Find returns the record stored under name
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete drops the record stored under name; absent names are ignored
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.logger.Debug("Record deleted", zap.String("name", name))
}

// Len returns the number of records
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records returns the records in iteration order
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// ListRecords renders every record, one per line
func (b *AddressBook) ListRecords() string {
	if b.Len() == 0 {
		return EmptyBookMessage
	}
	lines := make([]string, 0, b.Len())
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
