package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

// InvoicesClient implements teamleader.InvoicesClient.
type InvoicesClient struct {
	core *Client
}

// Add implements teamleader.InvoicesClient.Add. Invoice lines are flattened
// into numbered wire fields, counting from 1.
func (c *InvoicesClient) Add(ctx context.Context, request *teamleader.AddInvoiceRequest) (int, error) {
	if request == nil {
		return 0, &teamleader.InvalidInputError{Message: "request is required"}
	}

	if request.SysDepartmentID == 0 {
		return 0, &teamleader.InvalidInputError{Argument: "sys_department_id"}
	}

	if request.ContactID == nil && request.CompanyID == nil {
		return 0, &teamleader.InvalidInputError{Message: "one of contact_id or company_id is required"}
	}

	if request.ContactID != nil && request.CompanyID != nil {
		return 0, &teamleader.InvalidInputError{Message: "only one of contact_id or company_id can be set"}
	}

	if request.PaymentTerm != nil && !request.PaymentTerm.Valid() {
		return 0, &teamleader.InvalidInputError{Argument: "payment_term"}
	}

	if request.Date != nil && !request.Date.Valid() {
		return 0, &teamleader.InvalidInputError{Argument: "date"}
	}

	for _, line := range request.Lines {
		if line.Description == "" {
			return 0, &teamleader.InvalidInputError{Message: "fields description, amount, vat and price are required for each line"}
		}

		if !line.VAT.Valid() {
			return 0, &teamleader.InvalidInputError{Argument: "vat"}
		}
	}

	p := newPayload()
	p.setInt("sys_department_id", request.SysDepartmentID)

	if request.ContactID != nil {
		p.set("contact_or_company", "contact")
		p.setInt("contact_or_company_id", *request.ContactID)
	} else {
		p.set("contact_or_company", "company")
		p.setInt("contact_or_company_id", *request.CompanyID)
	}

	for i, line := range request.Lines {
		n := strconv.Itoa(i + 1)
		p.set("description_"+n, line.Description)
		p.setFloat("price_"+n, line.Price)
		p.setFloat("amount_"+n, line.Amount)
		p.set("vat_"+n, string(line.VAT))
		p.setOptInt("product_id_"+n, line.ProductID)
		p.setOptInt("account_"+n, line.Account)
		p.setOptString("subtitle_"+n, line.Subtitle)
	}

	p.setOptString("for_attention_of", request.ForAttentionOf)

	if request.PaymentTerm != nil {
		p.set("payment_term", string(*request.PaymentTerm))
	}

	p.setBool("draft_invoice", request.DraftInvoice)
	p.setOptInt("layout_id", request.LayoutID)

	// Invoice dates go over the wire as DD/MM/YYYY, unlike the Unix
	// timestamps used for contact birth dates.
	if request.Date != nil {
		p.set("date", request.Date.Time().Format("02/01/2006"))
	}

	p.setOptString("po_number", request.PONumber)
	p.setBool("direct_debit", request.DirectDebit)
	p.setOptString("comments", request.Comments)
	p.setOptInt("force_set_number", request.ForceSetNumber)

	body, err := c.core.request(ctx, "addInvoice", p.values)
	if err != nil {
		return 0, fmt.Errorf("adding invoice: %w", err)
	}

	return decodeID(body)
}
