package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("donor id", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, in := range []string{"", "abc", "-1", "4.2"} {
		_, err := ParseID("donor id", in)
		assert.ErrorIs(t, err, ErrValidation, "input %q", in)
	}
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "50", want: "50"},
		{in: "50.25", want: "50.25"},
		{in: " 0.10 ", want: "0.1"},
		{in: "12.500", want: "12.5"},
		{in: "0", want: "0"},
		{in: "", wantErr: true},
		{in: "fifty", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "1.005", wantErr: true},
		{in: "9999999999.99", want: "9999999999.99"},
		{in: "10000000000", wantErr: true},
		{in: "123456789012345678.99", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney("amount", tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, money(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseHours(t *testing.T) {
	hours, err := ParseHours("hours worked", "8")
	require.NoError(t, err)
	assert.Equal(t, 8, hours)

	_, err = ParseHours("hours worked", "-1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseHours("hours worked", "1.5")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"donor":              KindDonor,
		"Donors":             KindDonor,
		"donations":          KindDonation,
		"project":            KindProject,
		"volunteers":         KindVolunteer,
		"volunteer-projects": KindVolunteerProject,
		"volunteer_project":  KindVolunteerProject,
		"Volunteer Projects": KindVolunteerProject,
	}

	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseKind("sponsor")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "donor, donation, project, volunteer, volunteer project")
}

func TestParseMoney_ExceedsColumn(t *testing.T) {
	_, err := ParseMoney("amount", "123456789012345678.99")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
	assert.Equal(t, "exceeds the maximum amount", verr.Reason)
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "Donor", KindDonor.Title())
	assert.Equal(t, "Volunteer project", KindVolunteerProject.Title())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "donor 7 not found", (&NotFoundError{Kind: KindDonor, ID: 7}).Error())
	assert.Equal(t, "volunteer 1 not found (volunteer project 2)", (&NotFoundError{Kind: KindVolunteer, ID: 1, Link: 2}).Error())
	assert.Equal(t, "project 3 does not exist", (&ReferenceError{Kind: KindProject, ID: 3}).Error())
	assert.Equal(t, `invalid amount "x": not a decimal amount`, (&ValidationError{Field: "amount", Value: "x", Reason: "not a decimal amount"}).Error())
}
