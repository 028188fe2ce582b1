package teamleader

import (
	"time"
)

// Record is one decoded JSON entity as returned by the API. Teamleader
// responses carry no fixed schema, so records stay generic maps.
type Record map[string]interface{}

// Date is a calendar date without a time component. The zero value is not a
// valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Time returns the date at midnight in the local time zone, matching the
// semantics the API expects for date fields.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Unix returns the date as a Unix timestamp in seconds.
func (d Date) Unix() int64 {
	return d.Time().Unix()
}

// Valid reports whether the date denotes an actual calendar day.
func (d Date) Valid() bool {
	t := d.Time()

	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// Gender is the closed set Teamleader accepts for the gender field.
type Gender string

// Recognized gender values.
const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderUnspecified Gender = "U"
)

// Valid reports whether the value is in the closed set.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnspecified:
		return true
	}

	return false
}

// PaymentTerm is the closed set of payment terms Teamleader accepts.
type PaymentTerm string

// Recognized payment terms.
const (
	PaymentTerm0Days          PaymentTerm = "0D"
	PaymentTerm7Days          PaymentTerm = "7D"
	PaymentTerm10Days         PaymentTerm = "10D"
	PaymentTerm15Days         PaymentTerm = "15D"
	PaymentTerm21Days         PaymentTerm = "21D"
	PaymentTerm30Days         PaymentTerm = "30D"
	PaymentTerm45Days         PaymentTerm = "45D"
	PaymentTerm60Days         PaymentTerm = "60D"
	PaymentTerm30DaysEndMonth PaymentTerm = "30DEM"
	PaymentTerm60DaysEndMonth PaymentTerm = "60DEM"
	PaymentTerm90DaysEndMonth PaymentTerm = "90DEM"
)

// Valid reports whether the value is in the closed set.
func (p PaymentTerm) Valid() bool {
	switch p {
	case PaymentTerm0Days, PaymentTerm7Days, PaymentTerm10Days, PaymentTerm15Days,
		PaymentTerm21Days, PaymentTerm30Days, PaymentTerm45Days, PaymentTerm60Days,
		PaymentTerm30DaysEndMonth, PaymentTerm60DaysEndMonth, PaymentTerm90DaysEndMonth:
		return true
	}

	return false
}

// VATRate is the closed set of VAT tariffs accepted on invoice lines.
type VATRate string

// Recognized VAT tariffs.
const (
	VAT00   VATRate = "00"
	VAT06   VATRate = "06"
	VAT12   VATRate = "12"
	VAT21   VATRate = "21"
	VATCM   VATRate = "CM"
	VATEX   VATRate = "EX"
	VATMC   VATRate = "MC"
	VATVCMD VATRate = "VCMD"
)

// Valid reports whether the value is in the closed set.
func (v VATRate) Valid() bool {
	switch v {
	case VAT00, VAT06, VAT12, VAT21, VATCM, VATEX, VATMC, VATVCMD:
		return true
	}

	return false
}

// ObjectType identifies the object category a segment is defined over.
type ObjectType string

// Recognized segment object types.
const (
	ObjectTypeCompanies   ObjectType = "crm_companies"
	ObjectTypeContacts    ObjectType = "crm_contacts"
	ObjectTypeTodos       ObjectType = "crm_todos"
	ObjectTypeCallbacks   ObjectType = "crm_callbacks"
	ObjectTypeMeetings    ObjectType = "crm_meetings"
	ObjectTypeInvoices    ObjectType = "inv_invoices"
	ObjectTypeCreditnotes ObjectType = "inv_creditnotes"
	ObjectTypeProjects    ObjectType = "pro_projects"
	ObjectTypeSales       ObjectType = "sale_sales"
	ObjectTypeTickets     ObjectType = "ticket_tickets"
)

// Valid reports whether the value is in the closed set.
func (o ObjectType) Valid() bool {
	switch o {
	case ObjectTypeCompanies, ObjectTypeContacts, ObjectTypeTodos, ObjectTypeCallbacks,
		ObjectTypeMeetings, ObjectTypeInvoices, ObjectTypeCreditnotes, ObjectTypeProjects,
		ObjectTypeSales, ObjectTypeTickets:
		return true
	}

	return false
}

// String returns a pointer to the given string. Convenience for filling
// optional request fields.
func String(v string) *string { return &v }

// Int returns a pointer to the given int.
func Int(v int) *int { return &v }

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool { return &v }

// AddContactRequest holds the arguments for creating a contact. Optional
// fields left nil are omitted from the outbound payload entirely.
type AddContactRequest struct {
	// Required fields
	Forename string
	Surname  string
	Email    string

	// Optional fields
	Salutation  *string
	Telephone   *string
	GSM         *string
	Website     *string
	Country     *string // ISO 3166-1 alpha-2, e.g. "BE"
	Zipcode     *string
	City        *string
	Street      *string
	Number      *string
	Language    *string // ISO 639-1, e.g. "nl"
	Gender      *Gender
	DateOfBirth *Date
	Description *string
	Newsletter  *bool

	// Tags to attach. Existing tags are reused, unknown tags are created
	// server-side. An empty slice is omitted from the payload.
	Tags []string

	// CustomFields maps custom field IDs to the value to set.
	CustomFields map[int]string

	// Merge-control flags, always sent (default false).
	AutomergeByName  bool
	AutomergeByEmail bool

	// Tracking is the title of an activity to log with the creation;
	// TrackingLong its description.
	Tracking     *string
	TrackingLong *string
}

// UpdateContactRequest holds the arguments for updating a contact. Only
// non-nil fields are sent.
type UpdateContactRequest struct {
	ContactID int

	// TrackChanges controls whether the update is logged and visible to
	// users in the web interface. Defaults to true when nil.
	TrackChanges *bool

	Forename    *string
	Surname     *string
	Email       *string
	Telephone   *string
	GSM         *string
	Website     *string
	Country     *string
	Zipcode     *string
	City        *string
	Street      *string
	Number      *string
	Language    *string
	Gender      *Gender
	DateOfBirth *Date
	Description *string

	// Tags to add and tags to remove. Empty slices are omitted.
	Tags       []string
	RemoveTags []string

	CustomFields map[int]string

	// LinkedCompanyIDs replaces the set of companies the contact is linked to.
	LinkedCompanyIDs []int
}

// LinkContactCompanyRequest links a contact to a company, optionally with the
// job title the contact holds there.
type LinkContactCompanyRequest struct {
	ContactID int
	CompanyID int
	Function  *string
}

// ContactListOptions are the filters for listing contacts. They are computed
// once and attached to every page request of the resulting iterator.
type ContactListOptions struct {
	// Query is matched against forename, surname, company name and email.
	Query *string
	// ModifiedSince restricts results to contacts added or modified since
	// the given time.
	ModifiedSince *time.Time
	// FilterByTag restricts results to contacts carrying the tag.
	FilterByTag *string
	// SegmentID restricts results to a contact segment.
	SegmentID *int
	// SelectedCustomFields lists the IDs of custom fields to include
	// (max 10).
	SelectedCustomFields []int
}

// AddCompanyRequest holds the arguments for creating a company.
type AddCompanyRequest struct {
	// Required field
	Name string

	// Optional fields
	Email               *string
	VATCode             *string
	Telephone           *string
	Country             *string // ISO 3166-1 alpha-2
	Zipcode             *string
	City                *string
	Street              *string
	Number              *string
	Website             *string
	Description         *string
	AccountManagerID    *int
	LocalBusinessNumber *string
	BusinessType        *string
	Language            *string // ISO 639-1
	PaymentTerm         *PaymentTerm

	Tags         []string
	CustomFields map[int]string

	// Merge-control flags, always sent (default false).
	AutomergeByName    bool
	AutomergeByEmail   bool
	AutomergeByVATCode bool
}

// UpdateCompanyRequest holds the arguments for updating a company. Only
// non-nil fields are sent.
type UpdateCompanyRequest struct {
	CompanyID int

	// TrackChanges defaults to true when nil, as for contacts.
	TrackChanges *bool

	Name                *string
	Email               *string
	VATCode             *string
	Telephone           *string
	Country             *string
	Zipcode             *string
	City                *string
	Street              *string
	Number              *string
	Website             *string
	Description         *string
	AccountManagerID    *int
	LocalBusinessNumber *string
	BusinessType        *string
	Language            *string
	PaymentTerm         *PaymentTerm

	Tags       []string
	RemoveTags []string

	CustomFields map[int]string
}

// CompanyListOptions are the filters for listing companies.
type CompanyListOptions struct {
	Query                *string
	ModifiedSince        *time.Time
	FilterByTag          *string
	SegmentID            *int
	SelectedCustomFields []int
}

// InvoiceLine is one line of an invoice to be created.
type InvoiceLine struct {
	// Required per line
	Description string
	Price       float64
	Amount      float64
	VAT         VATRate

	// Optional per line
	ProductID *int
	Account   *int
	Subtitle  *string
}

// AddInvoiceRequest holds the arguments for creating an invoice. Exactly one
// of ContactID and CompanyID must be set.
type AddInvoiceRequest struct {
	SysDepartmentID int

	ContactID *int
	CompanyID *int

	Lines []InvoiceLine

	ForAttentionOf *string
	PaymentTerm    *PaymentTerm
	// DraftInvoice inserts the invoice as a draft instead of booking it.
	DraftInvoice bool
	LayoutID     *int
	// Date of the invoice; the API defaults it to today when absent.
	Date           *Date
	PONumber       *string
	DirectDebit    bool
	Comments       *string
	ForceSetNumber *int
}
