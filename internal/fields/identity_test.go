package fields

import "testing"

func TestIdentifyNamePriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"titled beats label", "Name: Jane Doe\nsigned Mr. John Smith", "John Smith"},
		{"label beats own line", "Name: Jane Doe\nsome other text", "Jane Doe"},
		{"own line", "header text\nAlice Cooper\nmore text", "Alice Cooper"},
		{"general fallback", "payment sent to Bob Martin today", "Bob Martin"},
		{"no name", "nothing capitalized here", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := Identify(tc.text)
			if id.Name != tc.want {
				t.Fatalf("expected name %q, got %q", tc.want, id.Name)
			}
		})
	}
}

func TestIdentifySSNValidRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"valid", "SSN: 123-45-6789", "123-45-6789"},
		{"area 000 rejected", "SSN: 000-12-3456", ""},
		{"area 666 rejected", "SSN: 666-12-3456", ""},
		{"area 9xx rejected", "SSN: 912-12-3456", ""},
		{"group 00 rejected", "SSN: 123-00-6789", ""},
		{"serial 0000 rejected", "SSN: 123-45-0000", ""},
		{"first valid wins", "ids 000-12-3456 then 123-45-6789", "123-45-6789"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := Identify(tc.text)
			if id.SSN != tc.want {
				t.Fatalf("expected ssn %q, got %q", tc.want, id.SSN)
			}
		})
	}
}

func TestIdentifyIDTokensAndEmail(t *testing.T) {
	id := Identify("license D1234567 passport K12345678 reach me at jane.doe@example.com")
	if id.DriversLicense != "D1234567" {
		t.Fatalf("expected license D1234567, got %q", id.DriversLicense)
	}
	if id.Passport != "K12345678" {
		t.Fatalf("expected passport K12345678, got %q", id.Passport)
	}
	if id.Email != "jane.doe@example.com" {
		t.Fatalf("expected email, got %q", id.Email)
	}
}

func TestIdentityEmpty(t *testing.T) {
	if !Identify("lowercase only, no signals").Empty() {
		t.Fatalf("expected empty identity")
	}
	if Identify("contact me@example.com").Empty() {
		t.Fatalf("expected non-empty identity")
	}
}
