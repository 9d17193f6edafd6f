package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidateBusinessRule(t *testing.T) {
	name := "Acme Trades"
	regNo := "RC-12345"
	location := "Lagos"
	empty := ""

	tests := []struct {
		testName string
		user     User
		wantErr  bool
	}{
		{
			testName: "personal account needs nothing",
			user:     User{},
			wantErr:  false,
		},
		{
			testName: "business with all fields",
			user: User{
				IsBusiness:     true,
				BusinessName:   &name,
				RegistrationNo: &regNo,
				Location:       &location,
			},
			wantErr: false,
		},
		{
			testName: "business missing everything",
			user:     User{IsBusiness: true},
			wantErr:  true,
		},
		{
			testName: "business missing registration no",
			user: User{
				IsBusiness:   true,
				BusinessName: &name,
				Location:     &location,
			},
			wantErr: true,
		},
		{
			testName: "business with empty business name",
			user: User{
				IsBusiness:     true,
				BusinessName:   &empty,
				RegistrationNo: &regNo,
				Location:       &location,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "business must have")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
