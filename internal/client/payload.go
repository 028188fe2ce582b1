package client

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

// payload accumulates the flat field-to-value mapping sent as a POST body.
// Each setter encodes one transformation rule; optional setters drop unset
// values so absent arguments never reach the wire.
type payload struct {
	values url.Values
}

func newPayload() *payload {
	return &payload{values: url.Values{}}
}

func (p *payload) set(key, value string) {
	p.values.Set(key, value)
}

func (p *payload) setInt(key string, value int) {
	p.values.Set(key, strconv.Itoa(value))
}

func (p *payload) setInt64(key string, value int64) {
	p.values.Set(key, strconv.FormatInt(value, 10))
}

func (p *payload) setFloat(key string, value float64) {
	p.values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// setBool encodes a flag as "0"/"1".
func (p *payload) setBool(key string, value bool) {
	if value {
		p.values.Set(key, "1")
	} else {
		p.values.Set(key, "0")
	}
}

func (p *payload) setOptString(key string, value *string) {
	if value != nil {
		p.values.Set(key, *value)
	}
}

func (p *payload) setOptInt(key string, value *int) {
	if value != nil {
		p.setInt(key, *value)
	}
}

func (p *payload) setOptBool(key string, value *bool) {
	if value != nil {
		p.setBool(key, *value)
	}
}

// setList comma-joins a tag-style list in original order. Empty and nil
// lists are omitted entirely; the wire field never carries an empty string.
func (p *payload) setList(key string, items []string) {
	if len(items) == 0 {
		return
	}

	p.values.Set(key, strings.Join(items, ","))
}

// setIntList comma-joins a list of identifiers. Empty lists are omitted.
func (p *payload) setIntList(key string, ids []int) {
	if len(ids) == 0 {
		return
	}

	encoded := make([]string, len(ids))
	for i, id := range ids {
		encoded[i] = strconv.Itoa(id)
	}

	p.values.Set(key, strings.Join(encoded, ","))
}

// setCustomFields rewrites each custom field ID to its prefixed wire key.
// No collective custom_fields key is ever emitted.
func (p *payload) setCustomFields(fields map[int]string) {
	for id, value := range fields {
		p.values.Set("custom_field_"+strconv.Itoa(id), value)
	}
}

// setDate converts a calendar date to a Unix timestamp in seconds.
func (p *payload) setDate(key string, date *teamleader.Date) {
	if date != nil {
		p.setInt64(key, date.Unix())
	}
}
