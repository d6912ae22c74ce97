// internal/form/catalogue.go
package form

type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindDate     Kind = "date"
	KindMonth    Kind = "month"
	KindNumber   Kind = "number"
	KindSelect   Kind = "select"
	KindTextarea Kind = "textarea"
	KindCheckbox Kind = "checkbox"
)

// Section groups fields on the rendered page.
type Section string

const (
	SectionComplainant Section = "A"
	SectionProject     Section = "B"
	SectionComplaint   Section = "C"
	SectionDocuments   Section = "D"
	SectionDeclaration Section = "E"
)

var sectionTitles = map[Section]string{
	SectionComplainant: "Complainant Details",
	SectionProject:     "Builder & Project Details",
	SectionComplaint:   "Complaint Details",
	SectionDocuments:   "Documents Available",
	SectionDeclaration: "Declaration",
}

func (s Section) Title() string {
	return sectionTitles[s]
}

// FieldDef describes one control of the complaint form.
type FieldDef struct {
	ID          string
	Label       string
	Kind        Kind
	Section     Section
	Required    bool
	Options     []string
	Placeholder string
}

// Field identifiers read by the pipeline.
const (
	FieldFullName           = "fullName"
	FieldFathersName        = "fathersName"
	FieldDOB                = "dob"
	FieldGender             = "gender"
	FieldNationality        = "nationality"
	FieldAadhaar            = "aadhaar"
	FieldPAN                = "pan"
	FieldMobile             = "mobile"
	FieldAltMobile          = "altMobile"
	FieldEmail              = "email"
	FieldAddress            = "address"
	FieldCity               = "city"
	FieldState              = "state"
	FieldPIN                = "pin"
	FieldProjectName        = "projectName"
	FieldRERARegNo          = "reraRegNo"
	FieldPromoterName       = "promoterName"
	FieldBuilderAddress     = "builderAddress"
	FieldBuilderContact     = "builderContact"
	FieldBuilderEmail       = "builderEmail"
	FieldProjectLocation    = "projectLocation"
	FieldPropertyType       = "propertyType"
	FieldUnitNumber         = "unitNumber"
	FieldAgreementNo        = "agreementNo"
	FieldAgreementDate      = "agreementDate"
	FieldTotalSaleValue     = "totalSaleValue"
	FieldAmountPaid         = "amountPaid"
	FieldComplaintCategory  = "complaintCategory"
	FieldExpectedPossession = "expectedPossession"
	FieldCurrentStatus      = "currentStatus"
	FieldDescription        = "description"
	FieldRelief             = "relief"
	FieldCompensation       = "compensation"
	FieldDigitalSignature   = "digitalSignature"
	FlagDeclarationAgree    = "declarationAgree"
)

// Document availability flags.
const (
	DocAadhaar       = "doc_aadhaar"
	DocPAN           = "doc_pan"
	DocAgreement     = "doc_agreement"
	DocReceipts      = "doc_receipts"
	DocAllotment     = "doc_allotment"
	DocComms         = "doc_comms"
	DocPhotos        = "doc_photos"
	DocNotice        = "doc_notice"
	DocBrochure      = "doc_brochure"
	DocBankStatement = "doc_bankstatement"
)

// MandatoryDocs gate submission; the other document flags are informational.
var MandatoryDocs = []string{DocAadhaar, DocPAN, DocAgreement, DocReceipts}

// Catalogue returns the complaint form in page order.
func Catalogue() []FieldDef {
	return []FieldDef{
		{ID: FieldFullName, Label: "Full Name", Kind: KindText, Section: SectionComplainant, Required: true},
		{ID: FieldFathersName, Label: "Father's / Husband's Name", Kind: KindText, Section: SectionComplainant, Required: true},
		{ID: FieldDOB, Label: "Date of Birth", Kind: KindDate, Section: SectionComplainant, Required: true},
		{ID: FieldGender, Label: "Gender", Kind: KindSelect, Section: SectionComplainant, Required: true,
			Options: []string{"Male", "Female", "Other"}},
		{ID: FieldNationality, Label: "Nationality", Kind: KindText, Section: SectionComplainant, Required: true, Placeholder: "Indian"},
		{ID: FieldAadhaar, Label: "Aadhaar Number", Kind: KindText, Section: SectionComplainant, Required: true, Placeholder: "1234 5678 9012"},
		{ID: FieldPAN, Label: "PAN Number", Kind: KindText, Section: SectionComplainant, Placeholder: "ABCDE1234F"},
		{ID: FieldMobile, Label: "Mobile Number", Kind: KindTel, Section: SectionComplainant, Required: true, Placeholder: "9876543210"},
		{ID: FieldAltMobile, Label: "Alternate Mobile", Kind: KindTel, Section: SectionComplainant},
		{ID: FieldEmail, Label: "Email Address", Kind: KindEmail, Section: SectionComplainant, Required: true},
		{ID: FieldAddress, Label: "Residential Address", Kind: KindTextarea, Section: SectionComplainant, Required: true},
		{ID: FieldCity, Label: "City", Kind: KindText, Section: SectionComplainant, Required: true},
		{ID: FieldState, Label: "State", Kind: KindSelect, Section: SectionComplainant, Required: true,
			Options: []string{"Telangana", "Andhra Pradesh", "Karnataka", "Maharashtra", "Tamil Nadu", "Other"}},
		{ID: FieldPIN, Label: "PIN Code", Kind: KindText, Section: SectionComplainant, Required: true, Placeholder: "500032"},

		{ID: FieldProjectName, Label: "Project Name", Kind: KindText, Section: SectionProject, Required: true},
		{ID: FieldRERARegNo, Label: "RERA Registration No.", Kind: KindText, Section: SectionProject},
		{ID: FieldPromoterName, Label: "Promoter / Builder Name", Kind: KindText, Section: SectionProject, Required: true},
		{ID: FieldBuilderAddress, Label: "Builder Office Address", Kind: KindTextarea, Section: SectionProject, Required: true},
		{ID: FieldBuilderContact, Label: "Builder Contact Number", Kind: KindTel, Section: SectionProject},
		{ID: FieldBuilderEmail, Label: "Builder Email", Kind: KindEmail, Section: SectionProject},
		{ID: FieldProjectLocation, Label: "Project Location", Kind: KindText, Section: SectionProject, Required: true},
		{ID: FieldPropertyType, Label: "Property Type", Kind: KindSelect, Section: SectionProject, Required: true,
			Options: []string{"Apartment / Flat", "Villa / Independent House", "Plot", "Commercial Space"}},
		{ID: FieldUnitNumber, Label: "Unit / Flat Number", Kind: KindText, Section: SectionProject, Required: true},
		{ID: FieldAgreementNo, Label: "Agreement for Sale No.", Kind: KindText, Section: SectionProject},
		{ID: FieldAgreementDate, Label: "Agreement Date", Kind: KindDate, Section: SectionProject, Required: true},
		{ID: FieldTotalSaleValue, Label: "Total Sale Value (₹)", Kind: KindNumber, Section: SectionProject, Required: true},
		{ID: FieldAmountPaid, Label: "Amount Paid (₹)", Kind: KindNumber, Section: SectionProject, Required: true},

		{ID: FieldComplaintCategory, Label: "Complaint Category", Kind: KindSelect, Section: SectionComplaint, Required: true,
			Options: []string{
				"Delay in Possession",
				"Non-registration of Project",
				"Deviation from Sanctioned Plan",
				"Quality / Structural Defects",
				"Refund Not Provided",
				"False Advertisement",
				"Other",
			}},
		{ID: FieldExpectedPossession, Label: "Promised Possession Date", Kind: KindMonth, Section: SectionComplaint},
		{ID: FieldCurrentStatus, Label: "Current Project Status", Kind: KindSelect, Section: SectionComplaint, Required: true,
			Options: []string{
				"Under Construction",
				"Construction Stalled",
				"Completed, Possession Not Given",
				"Possession Given with Defects",
			}},
		{ID: FieldDescription, Label: "Complaint Description", Kind: KindTextarea, Section: SectionComplaint, Required: true,
			Placeholder: "Describe the issue in at least 100 characters"},
		{ID: FieldRelief, Label: "Relief Sought", Kind: KindTextarea, Section: SectionComplaint, Required: true},
		{ID: FieldCompensation, Label: "Compensation Claimed (₹)", Kind: KindNumber, Section: SectionComplaint},

		{ID: DocAadhaar, Label: "Aadhaar Card", Kind: KindCheckbox, Section: SectionDocuments, Required: true},
		{ID: DocPAN, Label: "PAN Card", Kind: KindCheckbox, Section: SectionDocuments, Required: true},
		{ID: DocAgreement, Label: "Agreement for Sale", Kind: KindCheckbox, Section: SectionDocuments, Required: true},
		{ID: DocReceipts, Label: "Payment Receipts", Kind: KindCheckbox, Section: SectionDocuments, Required: true},
		{ID: DocAllotment, Label: "Allotment Letter", Kind: KindCheckbox, Section: SectionDocuments},
		{ID: DocComms, Label: "Correspondence with Builder", Kind: KindCheckbox, Section: SectionDocuments},
		{ID: DocPhotos, Label: "Site Photographs", Kind: KindCheckbox, Section: SectionDocuments},
		{ID: DocNotice, Label: "Legal Notice Sent", Kind: KindCheckbox, Section: SectionDocuments},
		{ID: DocBrochure, Label: "Project Brochure", Kind: KindCheckbox, Section: SectionDocuments},
		{ID: DocBankStatement, Label: "Bank Statement", Kind: KindCheckbox, Section: SectionDocuments},

		{ID: FlagDeclarationAgree, Label: "I declare that the information furnished above is true to the best of my knowledge.",
			Kind: KindCheckbox, Section: SectionDeclaration, Required: true},
		{ID: FieldDigitalSignature, Label: "Digital Signature (type your full name)", Kind: KindText, Section: SectionDeclaration, Required: true},
	}
}

// Trackables returns the identifiers of required controls, in page order.
func Trackables(defs []FieldDef) []string {
	var ids []string
	for _, d := range defs {
		if d.Required {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Group is a section with its fields, for rendering.
type Group struct {
	Section Section
	Title   string
	Fields  []FieldDef
}

// Groups partitions defs by section, preserving order.
func Groups(defs []FieldDef) []Group {
	var groups []Group
	for _, d := range defs {
		if n := len(groups); n == 0 || groups[n-1].Section != d.Section {
			groups = append(groups, Group{Section: d.Section, Title: d.Section.Title()})
		}
		groups[len(groups)-1].Fields = append(groups[len(groups)-1].Fields, d)
	}
	return groups
}
