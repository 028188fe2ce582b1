package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/teamkit-io/teamleader/internal/constants"
	"github.com/teamkit-io/teamleader/internal/validate"
	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

// ContactsClient implements teamleader.ContactsClient.
type ContactsClient struct {
	core *Client
}

// validatePersonFields checks the shared enumerated and coded arguments of
// the contact write operations. Any failure is reported before a request is
// built.
func validatePersonFields(gender *teamleader.Gender, country, language *string, dateOfBirth *teamleader.Date) error {
	if gender != nil && !gender.Valid() {
		return &teamleader.InvalidInputError{Argument: "gender"}
	}

	if country != nil && !validate.CountryCode(*country) {
		return &teamleader.InvalidInputError{Argument: "country"}
	}

	if language != nil && !validate.LanguageCode(*language) {
		return &teamleader.InvalidInputError{Argument: "language"}
	}

	if dateOfBirth != nil && !dateOfBirth.Valid() {
		return &teamleader.InvalidInputError{Argument: "date_of_birth"}
	}

	return nil
}

// Add implements teamleader.ContactsClient.Add.
func (c *ContactsClient) Add(ctx context.Context, request *teamleader.AddContactRequest) (int, error) {
	if request == nil {
		return 0, &teamleader.InvalidInputError{Message: "request is required"}
	}

	if request.Forename == "" {
		return 0, &teamleader.InvalidInputError{Argument: "forename"}
	}

	if request.Surname == "" {
		return 0, &teamleader.InvalidInputError{Argument: "surname"}
	}

	if request.Email == "" {
		return 0, &teamleader.InvalidInputError{Argument: "email"}
	}

	err := validatePersonFields(request.Gender, request.Country, request.Language, request.DateOfBirth)
	if err != nil {
		return 0, err
	}

	p := newPayload()
	p.set("forename", request.Forename)
	p.set("surname", request.Surname)
	p.set("email", request.Email)
	p.setOptString("salutation", request.Salutation)
	p.setOptString("telephone", request.Telephone)
	p.setOptString("gsm", request.GSM)
	p.setOptString("website", request.Website)
	p.setOptString("country", request.Country)
	p.setOptString("zipcode", request.Zipcode)
	p.setOptString("city", request.City)
	p.setOptString("street", request.Street)
	p.setOptString("number", request.Number)
	p.setOptString("language", request.Language)
	p.setOptString("description", request.Description)
	p.setOptBool("newsletter", request.Newsletter)
	p.setOptString("tracking", request.Tracking)
	p.setOptString("tracking_long", request.TrackingLong)

	if request.Gender != nil {
		p.set("gender", string(*request.Gender))
	}

	p.setDate("dob", request.DateOfBirth)
	p.setList("add_tag_by_string", request.Tags)
	p.setCustomFields(request.CustomFields)
	p.setBool("automerge_by_name", request.AutomergeByName)
	p.setBool("automerge_by_email", request.AutomergeByEmail)

	body, err := c.core.request(ctx, "addContact", p.values)
	if err != nil {
		return 0, fmt.Errorf("adding contact: %w", err)
	}

	return decodeID(body)
}

// Update implements teamleader.ContactsClient.Update.
func (c *ContactsClient) Update(ctx context.Context, request *teamleader.UpdateContactRequest) error {
	if request == nil {
		return &teamleader.InvalidInputError{Message: "request is required"}
	}

	if request.ContactID == 0 {
		return &teamleader.InvalidInputError{Argument: "contact_id"}
	}

	err := validatePersonFields(request.Gender, request.Country, request.Language, request.DateOfBirth)
	if err != nil {
		return err
	}

	trackChanges := true
	if request.TrackChanges != nil {
		trackChanges = *request.TrackChanges
	}

	p := newPayload()
	p.setInt("contact_id", request.ContactID)
	p.setBool("track_changes", trackChanges)
	p.setOptString("forename", request.Forename)
	p.setOptString("surname", request.Surname)
	p.setOptString("email", request.Email)
	p.setOptString("telephone", request.Telephone)
	p.setOptString("gsm", request.GSM)
	p.setOptString("website", request.Website)
	p.setOptString("country", request.Country)
	p.setOptString("zipcode", request.Zipcode)
	p.setOptString("city", request.City)
	p.setOptString("street", request.Street)
	p.setOptString("number", request.Number)
	p.setOptString("language", request.Language)
	p.setOptString("description", request.Description)

	if request.Gender != nil {
		p.set("gender", string(*request.Gender))
	}

	p.setDate("dob", request.DateOfBirth)
	p.setList("add_tag_by_string", request.Tags)
	p.setList("remove_tag_by_string", request.RemoveTags)
	p.setCustomFields(request.CustomFields)
	p.setIntList("linked_company_ids", request.LinkedCompanyIDs)

	_, err = c.core.request(ctx, "updateContact", p.values)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}

	return nil
}

// Delete implements teamleader.ContactsClient.Delete.
func (c *ContactsClient) Delete(ctx context.Context, contactID int) error {
	if contactID == 0 {
		return &teamleader.InvalidInputError{Argument: "contact_id"}
	}

	p := newPayload()
	p.setInt("contact_id", contactID)

	_, err := c.core.request(ctx, "deleteContact", p.values)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}

// Get implements teamleader.ContactsClient.Get.
func (c *ContactsClient) Get(ctx context.Context, contactID int) (teamleader.Record, error) {
	if contactID == 0 {
		return nil, &teamleader.InvalidInputError{Argument: "contact_id"}
	}

	p := newPayload()
	p.setInt("contact_id", contactID)

	body, err := c.core.request(ctx, "getContact", p.values)
	if err != nil {
		return nil, fmt.Errorf("getting contact: %w", err)
	}

	return decodeRecord(body)
}

// LinkToCompany implements teamleader.ContactsClient.LinkToCompany. Link and
// unlink share one endpoint distinguished by a mode field.
func (c *ContactsClient) LinkToCompany(ctx context.Context, request *teamleader.LinkContactCompanyRequest) error {
	if request == nil {
		return &teamleader.InvalidInputError{Message: "request is required"}
	}

	if request.ContactID == 0 {
		return &teamleader.InvalidInputError{Argument: "contact_id"}
	}

	if request.CompanyID == 0 {
		return &teamleader.InvalidInputError{Argument: "company_id"}
	}

	p := newPayload()
	p.setInt("contact_id", request.ContactID)
	p.setInt("company_id", request.CompanyID)
	p.set("mode", "link")
	p.setOptString("function", request.Function)

	_, err := c.core.request(ctx, "linkContactToCompany", p.values)
	if err != nil {
		return fmt.Errorf("linking contact to company: %w", err)
	}

	return nil
}

// UnlinkFromCompany implements teamleader.ContactsClient.UnlinkFromCompany.
func (c *ContactsClient) UnlinkFromCompany(ctx context.Context, contactID, companyID int) error {
	if contactID == 0 {
		return &teamleader.InvalidInputError{Argument: "contact_id"}
	}

	if companyID == 0 {
		return &teamleader.InvalidInputError{Argument: "company_id"}
	}

	p := newPayload()
	p.setInt("contact_id", contactID)
	p.setInt("company_id", companyID)
	p.set("mode", "unlink")

	_, err := c.core.request(ctx, "linkContactToCompany", p.values)
	if err != nil {
		return fmt.Errorf("unlinking contact from company: %w", err)
	}

	return nil
}

// contactFilters computes the page-invariant filter fields once, before the
// pagination loop starts.
func contactFilters(opts *teamleader.ContactListOptions) url.Values {
	filters := url.Values{}
	if opts == nil {
		return filters
	}

	if opts.Query != nil {
		filters.Set("searchby", *opts.Query)
	}

	if opts.ModifiedSince != nil {
		filters.Set("modifiedsince", strconv.FormatInt(opts.ModifiedSince.Unix(), 10))
	}

	if opts.FilterByTag != nil {
		filters.Set("filter_by_tag", *opts.FilterByTag)
	}

	if opts.SegmentID != nil {
		filters.Set("segment_id", strconv.Itoa(*opts.SegmentID))
	}

	if len(opts.SelectedCustomFields) > 0 {
		ids := make([]string, len(opts.SelectedCustomFields))
		for i, id := range opts.SelectedCustomFields {
			ids[i] = strconv.Itoa(id)
		}

		filters.Set("selected_customfields", strings.Join(ids, ","))
	}

	return filters
}

// List implements teamleader.ContactsClient.List.
func (c *ContactsClient) List(ctx context.Context, opts *teamleader.ContactListOptions) *teamleader.Iterator {
	filters := contactFilters(opts)

	return c.core.paginate(ctx, "getContacts", filters)
}

// ListByCompany implements teamleader.ContactsClient.ListByCompany.
func (c *ContactsClient) ListByCompany(ctx context.Context, companyID int) *teamleader.Iterator {
	filters := url.Values{}
	filters.Set("company_id", strconv.Itoa(companyID))

	return c.core.paginate(ctx, "getContactsByCompany", filters)
}

// paginate returns a lazy iterator over a list endpoint. The filters are
// attached unchanged to every page request; each advance fetches one page of
// constants.DefaultPageSize records until the server returns an empty page.
func (c *Client) paginate(ctx context.Context, endpoint string, filters url.Values) *teamleader.Iterator {
	return teamleader.NewIterator(ctx, constants.DefaultPageSize,
		func(ctx context.Context, page, amount int) ([]teamleader.Record, error) {
			p := newPayload()
			for key, values := range filters {
				p.values[key] = values
			}

			p.setInt("amount", amount)
			p.setInt("pageno", page)

			body, err := c.request(ctx, endpoint, p.values)
			if err != nil {
				return nil, fmt.Errorf("listing %s page %d: %w", endpoint, page, err)
			}

			return decodeRecords(body)
		})
}
