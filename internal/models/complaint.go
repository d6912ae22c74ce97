// internal/models/complaint.go
package models

// ComplaintRecord is the payload assembled on a successful submission.
// Embedded sections marshal flat, matching the form's field identifiers.
type ComplaintRecord struct {
	ComplaintID    string `json:"complaintId"`
	SubmissionDate string `json:"submissionDate"`
	SubmissionTime string `json:"submissionTime"`

	Complainant
	Project
	Grievance

	Docs             DocumentFlags `json:"docs"`
	DigitalSignature string        `json:"digitalSignature"`
}

// Complainant is section A of the form.
type Complainant struct {
	FullName    string `json:"fullName"`
	FathersName string `json:"fathersName"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Aadhaar     string `json:"aadhaar"`
	PAN         string `json:"pan"`
	Mobile      string `json:"mobile"`
	AltMobile   string `json:"altMobile"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PIN         string `json:"pin"`
}

// Project is section B: builder and project details.
type Project struct {
	ProjectName     string `json:"projectName"`
	RERARegNo       string `json:"reraRegNo"`
	PromoterName    string `json:"promoterName"`
	BuilderAddress  string `json:"builderAddress"`
	BuilderContact  string `json:"builderContact"`
	BuilderEmail    string `json:"builderEmail"`
	ProjectLocation string `json:"projectLocation"`
	PropertyType    string `json:"propertyType"`
	UnitNumber      string `json:"unitNumber"`
	AgreementNo     string `json:"agreementNo"`
	AgreementDate   string `json:"agreementDate"`
	TotalSaleValue  string `json:"totalSaleValue"`
	AmountPaid      string `json:"amountPaid"`
}

// Grievance is section C.
type Grievance struct {
	ComplaintCategory  string `json:"complaintCategory"`
	ExpectedPossession string `json:"expectedPossession"`
	CurrentStatus      string `json:"currentStatus"`
	Description        string `json:"description"`
	Relief             string `json:"relief"`
	Compensation       string `json:"compensation"`
}

// DocumentFlags records which supporting documents the complainant has.
type DocumentFlags struct {
	Aadhaar       bool `json:"aadhaar"`
	PAN           bool `json:"pan"`
	Agreement     bool `json:"agreement"`
	Receipts      bool `json:"receipts"`
	Allotment     bool `json:"allotment"`
	Comms         bool `json:"comms"`
	Photos        bool `json:"photos"`
	Notice        bool `json:"notice"`
	Brochure      bool `json:"brochure"`
	BankStatement bool `json:"bankStatement"`
}

type ValidationResult struct {
	FieldID string `json:"fieldId"`
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}
