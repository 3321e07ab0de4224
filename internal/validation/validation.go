// Package validation holds the field-rule checks for every API input.
// Rules are pure functions producing field errors, so they are
// unit-testable without an HTTP harness.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"taskboard-be/internal/apperrors"
	"taskboard-be/internal/entities"
)

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// checker accumulates field errors. The first failing rule per field wins,
// so callers can chain "required" before format rules.
type checker struct {
	fields []apperrors.FieldError
}

func (c *checker) check(ok bool, field, message string) {
	if ok {
		return
	}
	for _, f := range c.fields {
		if f.Field == field {
			return
		}
	}
	c.fields = append(c.fields, apperrors.FieldError{Field: field, Message: message})
}

func (c *checker) required(value, field, message string) {
	c.check(strings.TrimSpace(value) != "", field, message)
}

func (c *checker) lengthBetween(value string, min, max int, field, message string) {
	n := len(strings.TrimSpace(value))
	c.check(n >= min && n <= max, field, message)
}

func (c *checker) email(value, field string) {
	c.check(emailRegexp.MatchString(strings.TrimSpace(value)), field, "Please provide a valid email address")
}

func (c *checker) status(value, field string) {
	c.check(entities.IsValidStatus(value), field,
		fmt.Sprintf("Status must be one of: %s", strings.Join(entities.Statuses, ", ")))
}

// ValidateSignup checks the signup fields.
func ValidateSignup(name, email, password string) []apperrors.FieldError {
	var c checker
	c.required(name, "name", "Name is required")
	c.lengthBetween(name, 2, 50, "name", "Name must be between 2 and 50 characters")
	c.required(email, "email", "Email is required")
	c.email(email, "email")
	c.check(password != "", "password", "Password is required")
	c.check(len(password) >= 6, "password", "Password must be at least 6 characters long")
	return c.fields
}

// ValidateLogin checks the login fields.
func ValidateLogin(email, password string) []apperrors.FieldError {
	var c checker
	c.required(email, "email", "Email is required")
	c.email(email, "email")
	c.check(password != "", "password", "Password is required")
	return c.fields
}

// ValidateCreateTask checks a task creation payload. An empty status is
// allowed; the service defaults it to "To Do".
func ValidateCreateTask(title, status string) []apperrors.FieldError {
	var c checker
	c.required(title, "title", "Task title is required")
	c.lengthBetween(title, 1, 255, "title", "Task title must be between 1 and 255 characters")
	if status != "" {
		c.status(status, "status")
	}
	return c.fields
}

// ValidateUpdateTask checks a partial task update. Nil fields are left
// unchanged by the service, so only present fields are validated.
func ValidateUpdateTask(title, status *string) []apperrors.FieldError {
	var c checker
	if title != nil {
		c.required(*title, "title", "Task title is required")
		c.lengthBetween(*title, 1, 255, "title", "Task title must be between 1 and 255 characters")
	}
	if status != nil {
		c.status(*status, "status")
	}
	return c.fields
}

// ParseTaskID parses a task id path parameter. Anything that is not a
// positive integer is a validation failure, not a lookup miss.
func ParseTaskID(raw string) (int, []apperrors.FieldError) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, []apperrors.FieldError{{Field: "id", Message: "Task ID must be a positive integer"}}
	}
	return id, nil
}
