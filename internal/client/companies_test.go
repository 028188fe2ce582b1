package client

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

func TestCompaniesClient_Add(t *testing.T) {
	var form url.Values

	client := newTestClient(t, capturedForm(t, &form, `77`))

	term := teamleader.PaymentTerm30Days

	id, err := client.Companies().Add(context.Background(), &teamleader.AddCompanyRequest{
		Name:               "Acme BVBA",
		VATCode:            teamleader.String("BE0123456789"),
		Country:            teamleader.String("be"),
		PaymentTerm:        &term,
		Tags:               []string{"supplier"},
		CustomFields:       map[int]string{9: "gold"},
		AutomergeByVATCode: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 77, id)

	assert.Equal(t, "Acme BVBA", form.Get("name"))
	assert.Equal(t, "BE0123456789", form.Get("vat_code"))
	assert.Equal(t, "be", form.Get("country"))
	assert.Equal(t, "30D", form.Get("payment_term"))
	assert.Equal(t, "supplier", form.Get("add_tag_by_string"))
	assert.Equal(t, "gold", form.Get("custom_field_9"))

	// All three merge flags always go out.
	assert.Equal(t, "0", form.Get("automerge_by_name"))
	assert.Equal(t, "0", form.Get("automerge_by_email"))
	assert.Equal(t, "1", form.Get("automerge_by_vat_code"))
}

func TestCompaniesClient_Add_Validation(t *testing.T) {
	badTerm := teamleader.PaymentTerm("99D")

	tests := []struct {
		name    string
		request *teamleader.AddCompanyRequest
	}{
		{name: "missing name", request: &teamleader.AddCompanyRequest{}},
		{
			name:    "unknown country",
			request: &teamleader.AddCompanyRequest{Name: "Acme", Country: teamleader.String("ZZ")},
		},
		{
			name:    "payment term outside closed set",
			request: &teamleader.AddCompanyRequest{Name: "Acme", PaymentTerm: &badTerm},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			requests := 0

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				requests++
			})

			_, err := client.Companies().Add(context.Background(), testCase.request)
			require.Error(t, err)
			assert.True(t, teamleader.IsInvalidInput(err))
			assert.Equal(t, 0, requests)
		})
	}
}

func TestCompaniesClient_Update(t *testing.T) {
	var form url.Values

	client := newTestClient(t, capturedForm(t, &form, `"OK"`))

	err := client.Companies().Update(context.Background(), &teamleader.UpdateCompanyRequest{
		CompanyID:  7,
		Name:       teamleader.String("Acme NV"),
		RemoveTags: []string{"prospect"},
	})
	require.NoError(t, err)

	assert.Equal(t, "7", form.Get("company_id"))
	assert.Equal(t, "Acme NV", form.Get("name"))
	assert.Equal(t, "prospect", form.Get("remove_tag_by_string"))
	assert.Equal(t, "1", form.Get("track_changes"))
	assert.False(t, form.Has("email"))
}

func TestCompaniesClient_Delete(t *testing.T) {
	var form url.Values

	client := newTestClient(t, capturedForm(t, &form, `"OK"`))

	err := client.Companies().Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "7", form.Get("company_id"))
}

func TestCompaniesClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getCompany.php", r.URL.Path)

		_, _ = w.Write([]byte(`{"id": 7, "name": "Acme"}`))
	})

	company, err := client.Companies().Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Acme", company["name"])
}

func TestCompaniesClient_List(t *testing.T) {
	var form url.Values

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getCompanies.php", r.URL.Path)
		require.NoError(t, r.ParseForm())

		form = r.PostForm

		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Companies().List(context.Background(), &teamleader.CompanyListOptions{
		FilterByTag: teamleader.String("supplier"),
	}).All()
	require.NoError(t, err)

	assert.Equal(t, "supplier", form.Get("filter_by_tag"))
	assert.Equal(t, "100", form.Get("amount"))
	assert.Equal(t, "0", form.Get("pageno"))
}

func TestCompaniesClient_BusinessTypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getBusinessTypes.php", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "BE", r.PostForm.Get("country"))

		_, _ = w.Write([]byte(`[{"name": "NV"}, {"name": "BVBA"}]`))
	})

	types, err := client.Companies().BusinessTypes(context.Background(), "BE")
	require.NoError(t, err)
	assert.Equal(t, []string{"NV", "BVBA"}, types)
}

func TestCompaniesClient_BusinessTypes_UnknownCountry(t *testing.T) {
	requests := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := client.Companies().BusinessTypes(context.Background(), "ZZ")
	require.Error(t, err)
	assert.True(t, teamleader.IsInvalidInput(err))
	assert.Equal(t, 0, requests)
}
