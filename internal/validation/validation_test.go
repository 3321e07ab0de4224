package validation

import (
	"strings"
	"testing"

	"taskboard-be/internal/apperrors"
)

func fieldsByName(fields []apperrors.FieldError) map[string]string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Field] = f.Message
	}
	return m
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name       string
		inName     string
		email      string
		password   string
		wantFields []string
	}{
		{"valid", "Ann", "ann@x.com", "secret1", nil},
		{"missing name", "", "ann@x.com", "secret1", []string{"name"}},
		{"name too short", "A", "ann@x.com", "secret1", []string{"name"}},
		{"name too long", strings.Repeat("a", 51), "ann@x.com", "secret1", []string{"name"}},
		{"whitespace name", "   ", "ann@x.com", "secret1", []string{"name"}},
		{"missing email", "Ann", "", "secret1", []string{"email"}},
		{"bad email", "Ann", "not-an-email", "secret1", []string{"email"}},
		{"missing password", "Ann", "ann@x.com", "", []string{"password"}},
		{"short password", "Ann", "ann@x.com", "12345", []string{"password"}},
		{"everything wrong", "", "nope", "", []string{"name", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ValidateSignup(tt.inName, tt.email, tt.password)
			got := fieldsByName(fields)
			if len(got) != len(tt.wantFields) {
				t.Fatalf("got %d field errors (%v), want %d", len(got), got, len(tt.wantFields))
			}
			for _, f := range tt.wantFields {
				if _, ok := got[f]; !ok {
					t.Errorf("expected a field error on %q, got %v", f, got)
				}
			}
		})
	}
}

func TestValidateSignupFirstRulePerFieldWins(t *testing.T) {
	fields := ValidateSignup("", "ann@x.com", "secret1")
	if len(fields) != 1 {
		t.Fatalf("got %d field errors, want 1", len(fields))
	}
	if fields[0].Message != "Name is required" {
		t.Errorf("got message %q, want the required-rule message", fields[0].Message)
	}
}

func TestValidateLogin(t *testing.T) {
	if fields := ValidateLogin("ann@x.com", "secret1"); len(fields) != 0 {
		t.Errorf("valid login produced field errors: %v", fields)
	}
	got := fieldsByName(ValidateLogin("", ""))
	if _, ok := got["email"]; !ok {
		t.Errorf("expected email error, got %v", got)
	}
	if _, ok := got["password"]; !ok {
		t.Errorf("expected password error, got %v", got)
	}
}

func TestValidateCreateTask(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		status    string
		wantField string
	}{
		{"valid with status", "buy milk", "Done", ""},
		{"valid without status", "buy milk", "", ""},
		{"empty title", "", "", "title"},
		{"whitespace title", "   ", "", "title"},
		{"title too long", strings.Repeat("x", 256), "", "title"},
		{"unknown status", "buy milk", "Archived", "status"},
		{"lowercase status", "buy milk", "done", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ValidateCreateTask(tt.title, tt.status)
			if tt.wantField == "" {
				if len(fields) != 0 {
					t.Fatalf("unexpected field errors: %v", fields)
				}
				return
			}
			got := fieldsByName(fields)
			if _, ok := got[tt.wantField]; !ok {
				t.Errorf("expected error on %q, got %v", tt.wantField, got)
			}
		})
	}
}

func TestValidateUpdateTask(t *testing.T) {
	title := "new title"
	empty := ""
	bad := "Archived"
	done := "Done"

	if fields := ValidateUpdateTask(nil, nil); len(fields) != 0 {
		t.Errorf("no-op update produced field errors: %v", fields)
	}
	if fields := ValidateUpdateTask(&title, &done); len(fields) != 0 {
		t.Errorf("valid update produced field errors: %v", fields)
	}
	if fields := ValidateUpdateTask(&empty, nil); len(fields) != 1 || fields[0].Field != "title" {
		t.Errorf("empty title not rejected: %v", fields)
	}
	if fields := ValidateUpdateTask(nil, &bad); len(fields) != 1 || fields[0].Field != "status" {
		t.Errorf("bad status not rejected: %v", fields)
	} else if fields[0].Message != "Status must be one of: To Do, In Progress, Done" {
		t.Errorf("unexpected status message %q", fields[0].Message)
	}
}

func TestParseTaskID(t *testing.T) {
	if id, fields := ParseTaskID("42"); id != 42 || fields != nil {
		t.Errorf("ParseTaskID(42) = %d, %v", id, fields)
	}
	for _, raw := range []string{"abc", "0", "-1", "", "1.5"} {
		if _, fields := ParseTaskID(raw); len(fields) != 1 || fields[0].Field != "id" {
			t.Errorf("ParseTaskID(%q) should fail on id, got %v", raw, fields)
		}
	}
}
