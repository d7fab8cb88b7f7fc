// Package form implements the contact-form dialogue state: one in-progress
// inquiry per user, collected field by field until all five are present.
package form

import (
	"strings"
	"time"
)

// Field enumerates the contact-form fields. The zero value is invalid;
// use ParseField for user input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// fieldOrder is the fixed collection order.
var fieldOrder = [5]Field{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// ParseField maps a user-supplied field name to a Field.
func ParseField(raw string) (Field, bool) {
	switch Field(strings.ToLower(strings.TrimSpace(raw))) {
	case FieldName:
		return FieldName, true
	case FieldEmail:
		return FieldEmail, true
	case FieldPhone:
		return FieldPhone, true
	case FieldSubject:
		return FieldSubject, true
	case FieldMessage:
		return FieldMessage, true
	default:
		return "", false
	}
}

// FieldNames lists the valid field names in collection order.
func FieldNames() []string {
	names := make([]string, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		names = append(names, string(f))
	}
	return names
}

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusComplete   Status = "complete"
)

// Values is the fixed-size field record. Empty string means "not supplied".
type Values struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

func (v Values) get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldSubject:
		return v.Subject
	case FieldMessage:
		return v.Message
	default:
		return ""
	}
}

func (v *Values) set(f Field, value string) {
	switch f {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldSubject:
		v.Subject = value
	case FieldMessage:
		v.Message = value
	}
}

// Session is one user's in-progress contact form.
type Session struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Values      Values    `json:"fields"`
	Status      Status    `json:"status"`
}

// Value returns the stored value for a field, empty if not yet supplied.
func (s Session) Value(f Field) string {
	return s.Values.get(f)
}

// NextMissing scans the fixed field order and returns the first absent field.
func (s Session) NextMissing() (Field, bool) {
	for _, f := range fieldOrder {
		if s.Values.get(f) == "" {
			return f, true
		}
	}
	return "", false
}

func (s Session) filled() bool {
	_, missing := s.NextMissing()
	return !missing
}
