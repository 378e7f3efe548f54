package domain

import "testing"

func TestNormalizeBirthdate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"valid", "15/08/1990", "1990-08-15", true},
		{"leap day", "29/02/2024", "2024-02-29", true},
		{"trims spaces", " 01/01/2000 ", "2000-01-01", true},
		{"impossible day", "31/02/2024", "", false},
		{"not a leap year", "29/02/2023", "", false},
		{"wrong order", "2024/02/29", "", false},
		{"already canonical", "1990-08-15", "", false},
		{"garbage", "yesterday", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBirthdate(tt.input)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				if !IsValidation(err) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Errorf("got %q", got)
	}
}

func TestRoleForEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"ops@shoplite.com", RoleAdmin},
		{"OPS@SHOPLITE.COM", RoleAdmin},
		{"alice@example.com", RoleCustomer},
		{"shoplite.com@example.com", RoleCustomer},
		{"ops@notshoplite.com", RoleCustomer},
	}
	for _, tt := range tests {
		if got := RoleForEmail(tt.email, "shoplite.com"); got != tt.want {
			t.Errorf("RoleForEmail(%q): got %q, want %q", tt.email, got, tt.want)
		}
	}

	// Without a configured admin domain nobody is an admin.
	if got := RoleForEmail("ops@shoplite.com", ""); got != RoleCustomer {
		t.Errorf("empty admin domain: got %q", got)
	}
}
