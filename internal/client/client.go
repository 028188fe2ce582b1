// Package client contains the concrete implementation of the teamleader
// resource clients: credential injection, payload shaping, and response
// decoding over the form transport.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/teamkit-io/teamleader/internal/constants"
	"github.com/teamkit-io/teamleader/internal/http"
	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

var errUnexpectedIDResponse = errors.New("unexpected id response")

// Client implements the teamleader.Client interface. The credential pair is
// read-only after construction, so a Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	group      string
	secret     string
	logger     zerolog.Logger

	contacts  teamleader.ContactsClient
	companies teamleader.CompaniesClient
	invoices  teamleader.InvoicesClient
	directory teamleader.DirectoryClient
}

// New creates a client from the given config. The config is expected to be
// normalized by the tlclient package.
func New(config *teamleader.Config) (*Client, error) {
	if config.Group == "" || config.Secret == "" {
		return nil, teamleader.ErrCredentialsRequired
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	client := &Client{
		httpClient: http.NewClient(baseURL, httpOptions(config, logger)...),
		group:      config.Group,
		secret:     config.Secret,
		logger:     logger,
	}

	client.contacts = &ContactsClient{core: client}
	client.companies = &CompaniesClient{core: client}
	client.invoices = &InvoicesClient{core: client}
	client.directory = &DirectoryClient{core: client}

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *teamleader.Config, logger zerolog.Logger) []http.Option {
	opts := []http.Option{http.WithLogger(logger)}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	} else if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	return opts
}

// Contacts implements teamleader.Client.Contacts.
func (c *Client) Contacts() teamleader.ContactsClient {
	return c.contacts
}

// Companies implements teamleader.Client.Companies.
func (c *Client) Companies() teamleader.CompaniesClient {
	return c.companies
}

// Invoices implements teamleader.Client.Invoices.
func (c *Client) Invoices() teamleader.InvoicesClient {
	return c.invoices
}

// Directory implements teamleader.Client.Directory.
func (c *Client) Directory() teamleader.DirectoryClient {
	return c.directory
}

// request injects the credential pair into the payload and performs one round
// trip to the named endpoint. Every outbound payload carries api_group and
// api_secret.
func (c *Client) request(ctx context.Context, endpoint string, data url.Values) ([]byte, error) {
	if data == nil {
		data = url.Values{}
	}

	data.Set("api_group", c.group)
	data.Set("api_secret", c.secret)

	c.logger.Debug().Str("endpoint", endpoint).Msg("calling endpoint")

	resp, err := c.httpClient.PostForm(ctx, endpoint, data)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// decodeRecord parses a single-entity JSON response.
func decodeRecord(body []byte) (teamleader.Record, error) {
	var record teamleader.Record

	err := json.Unmarshal(body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return record, nil
}

// decodeRecords parses a list JSON response.
func decodeRecords(body []byte) ([]teamleader.Record, error) {
	var records []teamleader.Record

	err := json.Unmarshal(body, &records)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return records, nil
}

// decodeID parses the bare identifier some write endpoints return. The API
// is loose about whether the value is a JSON number or a quoted string.
func decodeID(body []byte) (int, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var value interface{}

	err := decoder.Decode(&value)
	if err != nil {
		return 0, fmt.Errorf("parsing id response: %w", err)
	}

	switch id := value.(type) {
	case json.Number:
		parsed, err := id.Int64()
		if err != nil {
			return 0, fmt.Errorf("parsing id response: %w", err)
		}

		return int(parsed), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return 0, fmt.Errorf("parsing id response: %w", err)
		}

		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: %s", errUnexpectedIDResponse, string(body))
	}
}
