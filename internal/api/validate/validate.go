// Package validate holds the field-level rules shared by the write endpoints.
package validate

import (
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserID must be lowercase letters, digits, underscore or hyphen, 1-36 chars
// (uuid-shaped ids included).
var userIDRx = regexp.MustCompile(`^[a-z0-9_-]{1,36}$`)

func UserID(v string) error {
	if v == "" {
		return fmt.Errorf("userId is required")
	}
	if !userIDRx.MatchString(v) {
		return fmt.Errorf("invalid userId")
	}
	return nil
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

// Title limits display titles to a sane length; content is unrestricted
// since activity and goal titles are free text.
func Title(v string) error {
	if v == "" {
		return fmt.Errorf("title is required")
	}
	if len(v) > 200 {
		return fmt.Errorf("title exceeds 200 characters")
	}
	return nil
}
