package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() CreateRequest {
	return CreateRequest{
		FullName:        "Amani Njoroge",
		PhoneNumber:     "+254700123456",
		Country:         "Kenya",
		Industry:        "Agriculture",
		BusinessIdea:    "Solar-powered irrigation",
		Available8Weeks: true,
		TimePreference:  "evening",
		DaysPreference:  []string{"tuesday", "thursday"},
		PaymentMethod:   "mpesa",
	}
}

func TestCreateRequest_ValidPasses(t *testing.T) {
	assert.NoError(t, validRequest().Validate())
}

func TestCreateRequest_RequiredFields(t *testing.T) {
	req := validRequest()
	req.FullName = ""
	assert.Error(t, req.Validate())

	req = validRequest()
	req.PhoneNumber = ""
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Country = ""
	assert.Error(t, req.Validate())
}

func TestCreateRequest_PhoneNumberTooShort(t *testing.T) {
	req := validRequest()
	req.PhoneNumber = "123"
	assert.Error(t, req.Validate())
}

func TestCreateRequest_OptionalFieldsMayBeEmpty(t *testing.T) {
	req := validRequest()
	req.Industry = ""
	req.BusinessIdea = ""
	req.DaysPreference = nil
	req.PaymentProof = ""
	assert.NoError(t, req.Validate())
}

func TestUpdateRequest_NilFieldsPass(t *testing.T) {
	assert.NoError(t, UpdateRequest{}.Validate())
}

func TestUpdateRequest_EmptyNameRejected(t *testing.T) {
	empty := ""
	req := UpdateRequest{FullName: &empty}
	assert.Error(t, req.Validate())
}
