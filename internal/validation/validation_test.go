package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "Ana", false},
		{"with spaces", "Ana Maria", false},
		{"with diacritics", "José Ñandú", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 41), true},
		{"digits", "Ana123", true},
		{"punctuation", "Ana-Maria", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Name(tt.value, "nombre")
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"ten digits", "5551234567", false},
		{"empty", "", true},
		{"too short", "12", true},
		{"too long", "55512345678", true},
		{"letters", "55512345ab", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Phone(tt.value)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "a@x.com", false},
		{"subdomain", "a@mail.x.com", false},
		{"empty", "", true},
		{"no at", "ax.com", true},
		{"no tld", "a@x", true},
		{"spaces", "a b@x.com", true},
		{"too long", strings.Repeat("a", 35) + "@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Email(tt.value)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"alphanumeric", "ana1", false},
		{"underscore", "ana_1", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 31), true},
		{"dash", "ana-1", true},
		{"space", "ana 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Username(tt.value)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"min length", "password", false},
		{"long but allowed", strings.Repeat("p", 100), false},
		{"empty", "", true},
		{"too short", "passwor", true},
		{"too long", strings.Repeat("p", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Password(tt.value)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func validInput() UserInput {
	return UserInput{
		Name:        "Ana",
		LastName:    "Lopez",
		PhoneNumber: "5551234567",
		Email:       "a@x.com",
		Username:    "ana1",
		Password:    "password1",
	}
}

func TestFull_Valid(t *testing.T) {
	assert.Empty(t, Full(validInput()))
}

func TestFull_OptionalMotherLastName(t *testing.T) {
	in := validInput()
	assert.Empty(t, Full(in))

	in.MotherLastName = strPtr("García")
	assert.Empty(t, Full(in))

	in.MotherLastName = strPtr("García123")
	errs := Full(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "motherLastName", errs[0].Field)
}

func TestFull_AggregatesAllViolations(t *testing.T) {
	in := validInput()
	in.Email = ""
	in.PhoneNumber = "12"

	errs := Full(in)
	require.Len(t, errs, 2)

	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phoneNumber")
	for _, fe := range errs {
		assert.NotEmpty(t, fe.Message)
	}
}

func TestFull_AllMissing(t *testing.T) {
	errs := Full(UserInput{})
	// name, lastName, phoneNumber, email, username, password
	assert.Len(t, errs, 6)
}

func TestFull_InvalidRole(t *testing.T) {
	in := validInput()
	in.Role = "superuser"
	errs := Full(in)
	require.Len(t, errs, 1)
	assert.Equal(t, "role", errs[0].Field)

	in.Role = "admin"
	assert.Empty(t, Full(in))
}

func TestPartial_AbsentFieldsUntouched(t *testing.T) {
	assert.Empty(t, Partial(UserPatch{}))
}

func TestPartial_ChecksOnlySuppliedFields(t *testing.T) {
	errs := Partial(UserPatch{Name: strPtr("X1"), Email: nil})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	errs = Partial(UserPatch{Name: strPtr("Ana"), Email: strPtr("bad")})
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)
}

func TestPartial_EmptySuppliedFieldIsInvalid(t *testing.T) {
	errs := Partial(UserPatch{Username: strPtr("")})
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
}

func TestLogin_PresenceOnly(t *testing.T) {
	assert.Empty(t, Login("ana1", "whatever"))
	// Format rules do not apply to login.
	assert.Empty(t, Login("not an email or username!", "x"))

	errs := Login("", "")
	require.Len(t, errs, 2)
	assert.Equal(t, "identifier", errs[0].Field)
	assert.Equal(t, "password", errs[1].Field)
}
