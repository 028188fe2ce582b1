package teamleader

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ContactsClient provides access to contact operations.
type ContactsClient interface {
	// Add creates a contact and returns its ID.
	Add(ctx context.Context, request *AddContactRequest) (int, error)
	// Update modifies an existing contact.
	Update(ctx context.Context, request *UpdateContactRequest) error
	// Delete removes a contact.
	Delete(ctx context.Context, contactID int) error
	// Get fetches one contact.
	Get(ctx context.Context, contactID int) (Record, error)
	// LinkToCompany links a contact to a company.
	LinkToCompany(ctx context.Context, request *LinkContactCompanyRequest) error
	// UnlinkFromCompany removes the link between a contact and a company.
	UnlinkFromCompany(ctx context.Context, contactID, companyID int) error
	// List lazily iterates over all contacts matching the options.
	List(ctx context.Context, opts *ContactListOptions) *Iterator
	// ListByCompany lazily iterates over the contacts linked to a company.
	ListByCompany(ctx context.Context, companyID int) *Iterator
}

// CompaniesClient provides access to company operations.
type CompaniesClient interface {
	Add(ctx context.Context, request *AddCompanyRequest) (int, error)
	Update(ctx context.Context, request *UpdateCompanyRequest) error
	Delete(ctx context.Context, companyID int) error
	Get(ctx context.Context, companyID int) (Record, error)
	List(ctx context.Context, opts *CompanyListOptions) *Iterator
	// BusinessTypes returns the names of the legal structures a company can
	// have in the given country.
	BusinessTypes(ctx context.Context, country string) ([]string, error)
}

// InvoicesClient provides access to invoice operations.
type InvoicesClient interface {
	// Add creates an invoice and returns its ID.
	Add(ctx context.Context, request *AddInvoiceRequest) (int, error)
}

// DirectoryClient provides access to account-level reference data.
type DirectoryClient interface {
	// Users returns the users of the account. When showInactive is set,
	// deactivated users are included.
	Users(ctx context.Context, showInactive bool) ([]Record, error)
	// Departments returns the departments of the account.
	Departments(ctx context.Context) ([]Record, error)
	// Tags returns all tags of the account.
	Tags(ctx context.Context) ([]Record, error)
	// Segments returns the saved segments for one object type.
	Segments(ctx context.Context, objectType ObjectType) ([]Record, error)
}

// Client is the Teamleader API client surface. Construct one with the
// tlclient package.
type Client interface {
	Contacts() ContactsClient
	Companies() CompaniesClient
	Invoices() InvoicesClient
	Directory() DirectoryClient
}

// Config represents client configuration for building a teamleader.Client.
//
// Group and Secret are the static credentials Teamleader issues per account;
// they are attached to every outbound request as api_group and api_secret.
// The client holds no other state and is safe for concurrent use.
type Config struct {
	// Required credentials
	Group  string
	Secret string

	// BaseURL overrides the API host. Defaults to the production host;
	// tlclient.New trims a trailing slash and adds https:// if no scheme
	// is present.
	BaseURL string

	// HTTPClient overrides the underlying transport. When nil a pooled
	// default client is used.
	HTTPClient *http.Client

	// HTTPTimeout bounds each request round trip. Ignored when HTTPClient
	// is set. Defaults to 30s.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging on the Logger.
	Debug bool

	// Logger receives structured logs. When nil, logging is disabled; the
	// client never configures any global logger.
	Logger *zerolog.Logger
}
