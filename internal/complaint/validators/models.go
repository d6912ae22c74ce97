// internal/complaint/validators/models.go
package validators

import "regexp"

// spaceClass is the browser \s set: ASCII whitespace plus \v, Unicode
// separators and U+FEFF.
const spaceClass = `\s\v\p{Z}\x{FEFF}`

var (
	whitespaceRegex = regexp.MustCompile(`[` + spaceClass + `]`)
	aadhaarRegex    = regexp.MustCompile(`^\d{12}$`)
	panRegex        = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	mobileRegex     = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinRegex        = regexp.MustCompile(`^\d{6}$`)
	emailRegex      = regexp.MustCompile(`^[^` + spaceClass + `@]+@[^` + spaceClass + `@]+\.[^` + spaceClass + `@]+$`)
)

// MinDescriptionLength is counted in characters after trimming.
const MinDescriptionLength = 100

const (
	MsgAadhaar     = "Please enter a valid 12-digit Aadhaar number."
	MsgPAN         = "Invalid PAN format. Expected: ABCDE1234F"
	MsgMobile      = "Enter a valid 10-digit Indian mobile number."
	MsgEmail       = "Please enter a valid email address."
	MsgPIN         = "Please enter a valid 6-digit PIN code."
	MsgDescription = "Complaint description must be at least 100 characters."
	MsgSignature   = "Please type your full name as digital signature."
)

// Func reports whether a raw field value is acceptable.
type Func func(string) bool

// FieldSpec binds a field to its validator and message.
type FieldSpec struct {
	ID           string
	Validate     Func
	ErrorMessage string
}
