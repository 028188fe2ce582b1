package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/teamkit-io/teamleader/internal/validate"
	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

// CompaniesClient implements teamleader.CompaniesClient.
type CompaniesClient struct {
	core *Client
}

// validateCompanyFields checks the shared coded and enumerated arguments of
// the company write operations.
func validateCompanyFields(country, language *string, paymentTerm *teamleader.PaymentTerm) error {
	if country != nil && !validate.CountryCode(*country) {
		return &teamleader.InvalidInputError{Argument: "country"}
	}

	if language != nil && !validate.LanguageCode(*language) {
		return &teamleader.InvalidInputError{Argument: "language"}
	}

	if paymentTerm != nil && !paymentTerm.Valid() {
		return &teamleader.InvalidInputError{Argument: "payment_term"}
	}

	return nil
}

// Add implements teamleader.CompaniesClient.Add.
func (c *CompaniesClient) Add(ctx context.Context, request *teamleader.AddCompanyRequest) (int, error) {
	if request == nil {
		return 0, &teamleader.InvalidInputError{Message: "request is required"}
	}

	if request.Name == "" {
		return 0, &teamleader.InvalidInputError{Argument: "name"}
	}

	err := validateCompanyFields(request.Country, request.Language, request.PaymentTerm)
	if err != nil {
		return 0, err
	}

	p := newPayload()
	p.set("name", request.Name)
	p.setOptString("email", request.Email)
	p.setOptString("vat_code", request.VATCode)
	p.setOptString("telephone", request.Telephone)
	p.setOptString("country", request.Country)
	p.setOptString("zipcode", request.Zipcode)
	p.setOptString("city", request.City)
	p.setOptString("street", request.Street)
	p.setOptString("number", request.Number)
	p.setOptString("website", request.Website)
	p.setOptString("description", request.Description)
	p.setOptInt("account_manager_id", request.AccountManagerID)
	p.setOptString("local_business_number", request.LocalBusinessNumber)
	p.setOptString("business_type", request.BusinessType)
	p.setOptString("language", request.Language)

	if request.PaymentTerm != nil {
		p.set("payment_term", string(*request.PaymentTerm))
	}

	p.setList("add_tag_by_string", request.Tags)
	p.setCustomFields(request.CustomFields)
	p.setBool("automerge_by_name", request.AutomergeByName)
	p.setBool("automerge_by_email", request.AutomergeByEmail)
	p.setBool("automerge_by_vat_code", request.AutomergeByVATCode)

	body, err := c.core.request(ctx, "addCompany", p.values)
	if err != nil {
		return 0, fmt.Errorf("adding company: %w", err)
	}

	return decodeID(body)
}

// Update implements teamleader.CompaniesClient.Update.
func (c *CompaniesClient) Update(ctx context.Context, request *teamleader.UpdateCompanyRequest) error {
	if request == nil {
		return &teamleader.InvalidInputError{Message: "request is required"}
	}

	if request.CompanyID == 0 {
		return &teamleader.InvalidInputError{Argument: "company_id"}
	}

	err := validateCompanyFields(request.Country, request.Language, request.PaymentTerm)
	if err != nil {
		return err
	}

	trackChanges := true
	if request.TrackChanges != nil {
		trackChanges = *request.TrackChanges
	}

	p := newPayload()
	p.setInt("company_id", request.CompanyID)
	p.setBool("track_changes", trackChanges)
	p.setOptString("name", request.Name)
	p.setOptString("email", request.Email)
	p.setOptString("vat_code", request.VATCode)
	p.setOptString("telephone", request.Telephone)
	p.setOptString("country", request.Country)
	p.setOptString("zipcode", request.Zipcode)
	p.setOptString("city", request.City)
	p.setOptString("street", request.Street)
	p.setOptString("number", request.Number)
	p.setOptString("website", request.Website)
	p.setOptString("description", request.Description)
	p.setOptInt("account_manager_id", request.AccountManagerID)
	p.setOptString("local_business_number", request.LocalBusinessNumber)
	p.setOptString("business_type", request.BusinessType)
	p.setOptString("language", request.Language)

	if request.PaymentTerm != nil {
		p.set("payment_term", string(*request.PaymentTerm))
	}

	p.setList("add_tag_by_string", request.Tags)
	p.setList("remove_tag_by_string", request.RemoveTags)
	p.setCustomFields(request.CustomFields)

	_, err = c.core.request(ctx, "updateCompany", p.values)
	if err != nil {
		return fmt.Errorf("updating company: %w", err)
	}

	return nil
}

// Delete implements teamleader.CompaniesClient.Delete.
func (c *CompaniesClient) Delete(ctx context.Context, companyID int) error {
	if companyID == 0 {
		return &teamleader.InvalidInputError{Argument: "company_id"}
	}

	p := newPayload()
	p.setInt("company_id", companyID)

	_, err := c.core.request(ctx, "deleteCompany", p.values)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	return nil
}

// Get implements teamleader.CompaniesClient.Get.
func (c *CompaniesClient) Get(ctx context.Context, companyID int) (teamleader.Record, error) {
	if companyID == 0 {
		return nil, &teamleader.InvalidInputError{Argument: "company_id"}
	}

	p := newPayload()
	p.setInt("company_id", companyID)

	body, err := c.core.request(ctx, "getCompany", p.values)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	return decodeRecord(body)
}

// companyFilters computes the page-invariant filter fields once.
func companyFilters(opts *teamleader.CompanyListOptions) url.Values {
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

// List implements teamleader.CompaniesClient.List.
func (c *CompaniesClient) List(ctx context.Context, opts *teamleader.CompanyListOptions) *teamleader.Iterator {
	filters := companyFilters(opts)

	return c.core.paginate(ctx, "getCompanies", filters)
}

// BusinessTypes implements teamleader.CompaniesClient.BusinessTypes.
func (c *CompaniesClient) BusinessTypes(ctx context.Context, country string) ([]string, error) {
	if !validate.CountryCode(country) {
		return nil, &teamleader.InvalidInputError{Argument: "country"}
	}

	p := newPayload()
	p.set("country", country)

	body, err := c.core.request(ctx, "getBusinessTypes", p.values)
	if err != nil {
		return nil, fmt.Errorf("getting business types: %w", err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))

	for _, record := range records {
		name, ok := record["name"].(string)
		if ok {
			names = append(names, name)
		}
	}

	return names, nil
}
