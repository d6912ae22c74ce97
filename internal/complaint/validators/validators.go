// internal/complaint/validators/validators.go
package validators

import (
	"strings"
	"unicode/utf8"

	"tgrera-complaint-form/internal/form"
)

// ValidateAadhaar accepts 12 digits once all whitespace is removed.
func ValidateAadhaar(s string) bool {
	return aadhaarRegex.MatchString(whitespaceRegex.ReplaceAllString(s, ""))
}

// ValidatePAN accepts the empty string. Case is not normalised here.
func ValidatePAN(s string) bool {
	if s == "" {
		return true
	}
	return panRegex.MatchString(s)
}

func ValidateMobile(s string) bool {
	return mobileRegex.MatchString(s)
}

func ValidateDescription(s string) bool {
	return DescriptionLength(s) >= MinDescriptionLength
}

// DescriptionLength is the character count of the trimmed description.
func DescriptionLength(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func ValidatePIN(s string) bool {
	return pinRegex.MatchString(s)
}

func ValidateEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidateSignature requires a non-blank typed name.
func ValidateSignature(s string) bool {
	return strings.TrimSpace(s) != ""
}

var (
	Aadhaar     = FieldSpec{ID: form.FieldAadhaar, Validate: ValidateAadhaar, ErrorMessage: MsgAadhaar}
	PAN         = FieldSpec{ID: form.FieldPAN, Validate: ValidatePAN, ErrorMessage: MsgPAN}
	Mobile      = FieldSpec{ID: form.FieldMobile, Validate: ValidateMobile, ErrorMessage: MsgMobile}
	Email       = FieldSpec{ID: form.FieldEmail, Validate: ValidateEmail, ErrorMessage: MsgEmail}
	PIN         = FieldSpec{ID: form.FieldPIN, Validate: ValidatePIN, ErrorMessage: MsgPIN}
	Description = FieldSpec{ID: form.FieldDescription, Validate: ValidateDescription, ErrorMessage: MsgDescription}
	Signature   = FieldSpec{ID: form.FieldDigitalSignature, Validate: ValidateSignature, ErrorMessage: MsgSignature}
)

// SubmitOrder is the order field checks run in before the document and
// declaration checks. The signature check runs last, after those.
func SubmitOrder() []FieldSpec {
	return []FieldSpec{Aadhaar, PAN, Mobile, Email, PIN, Description}
}

// ByID looks up a field spec, including the signature check.
func ByID(id string) (FieldSpec, bool) {
	for _, s := range append(SubmitOrder(), Signature) {
		if s.ID == id {
			return s, true
		}
	}
	return FieldSpec{}, false
}
