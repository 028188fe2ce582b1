package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamkit-io/teamleader/internal/validate"
)

func TestCountryCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "BE", want: true},
		{code: "be", want: true},
		{code: "NL", want: true},
		{code: "US", want: true},
		{code: "ZZ", want: false},
		{code: "XX", want: false},
		{code: "Belgium", want: false},
		{code: "B", want: false},
		{code: "", want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.code, func(t *testing.T) {
			assert.Equal(t, testCase.want, validate.CountryCode(testCase.code))
		})
	}
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "nl", want: true},
		{code: "NL", want: true},
		{code: "fr", want: true},
		{code: "en", want: true},
		{code: "xx", want: false},
		{code: "dut", want: false},
		{code: "", want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.code, func(t *testing.T) {
			assert.Equal(t, testCase.want, validate.LanguageCode(testCase.code))
		})
	}
}
