package booking

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"paintball-booking/internal/pkg/errs"
)

const (
	MaxNameLength  = 120
	MaxPhoneLength = 32
	MaxNoteLength  = 1000
)

// Contact is the client who submitted the booking.
type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Contact{}, errs.Validation("contact.name", "cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Contact{}, errs.Validation("contact.name", "is too long")
	}
	if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, "<> ") {
		return Contact{}, errs.Validation("contact.email", "must be a valid e-mail address")
	}
	if len(phone) > MaxPhoneLength {
		return Contact{}, errs.Validation("contact.phone", "is too long")
	}
	return Contact{name: name, email: email, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNoteLength {
		return Note{}, errs.Validation("note", "is too long")
	}
	return Note{value: s}, nil
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }
