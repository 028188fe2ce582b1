package teamleader_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

func TestAPIError_Error(t *testing.T) {
	err := &teamleader.AuthenticationError{
		APIError: teamleader.APIError{
			StatusCode: 401,
			Reason:     "bad credentials",
			Body:       []byte(`{"reason": "bad credentials"}`),
		},
	}

	assert.Equal(t, "teamleader: bad credentials (status 401)", err.Error())
}

func TestInvalidInputError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *teamleader.InvalidInputError
		want string
	}{
		{
			name: "argument form",
			err:  &teamleader.InvalidInputError{Argument: "gender"},
			want: "teamleader: invalid contents of argument gender",
		},
		{
			name: "message form",
			err:  &teamleader.InvalidInputError{Message: "one of contact_id or company_id is required"},
			want: "teamleader: one of contact_id or company_id is required",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.err.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	authErr := &teamleader.AuthenticationError{APIError: teamleader.APIError{StatusCode: 401}}
	badReqErr := &teamleader.BadRequestError{APIError: teamleader.APIError{StatusCode: 400}}
	rateErr := &teamleader.RateLimitExceededError{APIError: teamleader.APIError{StatusCode: 505}}
	unknownErr := &teamleader.UnknownAPIError{APIError: teamleader.APIError{StatusCode: 500}}
	inputErr := &teamleader.InvalidInputError{Argument: "country"}

	assert.True(t, teamleader.IsAuthentication(authErr))
	assert.False(t, teamleader.IsAuthentication(badReqErr))

	assert.True(t, teamleader.IsBadRequest(badReqErr))
	assert.False(t, teamleader.IsBadRequest(unknownErr))

	assert.True(t, teamleader.IsRateLimited(rateErr))
	assert.False(t, teamleader.IsRateLimited(authErr))

	assert.True(t, teamleader.IsInvalidInput(inputErr))
	assert.False(t, teamleader.IsInvalidInput(rateErr))
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	inner := &teamleader.RateLimitExceededError{APIError: teamleader.APIError{StatusCode: 505, Reason: "slow down"}}
	wrapped := fmt.Errorf("listing contacts: %w", inner)

	assert.True(t, teamleader.IsRateLimited(wrapped))

	target := &teamleader.RateLimitExceededError{}
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "slow down", target.Reason)
}
