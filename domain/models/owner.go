package models

import (
	"errors"
	"strings"
)

type OwnerKind string

const (
	OwnerKindEmail OwnerKind = "email"
	OwnerKindPhone OwnerKind = "phone"
)

var ErrInvalidOwner = errors.New("invalid owner identifier")

// Owner identifies who receives a subject's reminders.
// Kind is decided once when the raw identifier is parsed and never re-derived.
type Owner struct {
	Kind  OwnerKind `json:"kind"`
	Value string    `json:"value"`
}

func (o Owner) String() string {
	return o.Value
}

func (o Owner) IsPhone() bool {
	return o.Kind == OwnerKindPhone
}

// ParseOwner turns a login identifier into an Owner.
// Anything containing "@" is an email (lowercased); everything else is a phone number
// normalized to E.164, with countryCode prepended to bare 10-digit numbers.
func ParseOwner(raw, countryCode string) (Owner, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Owner{}, ErrInvalidOwner
	}

	if strings.Contains(value, "@") {
		email := strings.ToLower(value)
		at := strings.LastIndex(email, "@")
		if at == 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
			return Owner{}, ErrInvalidOwner
		}
		return Owner{Kind: OwnerKindEmail, Value: email}, nil
	}

	phone, err := NormalizePhone(value, countryCode)
	if err != nil {
		return Owner{}, err
	}
	return Owner{Kind: OwnerKindPhone, Value: phone}, nil
}

// NormalizePhone strips formatting and returns a "+<digits>" number.
//
//	"662 123 4567"  -> "+526621234567" (countryCode "52")
//	"+16621234567"  -> "+16621234567"
func NormalizePhone(raw, countryCode string) (string, error) {
	var b strings.Builder
	hasPlus := false

	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			hasPlus = true
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", ErrInvalidOwner
		}
	}

	digits := b.String()
	if len(digits) < 7 || len(digits) > 15 {
		return "", ErrInvalidOwner
	}

	switch {
	case hasPlus:
		return "+" + digits, nil
	case len(digits) == 10 && countryCode != "":
		return "+" + strings.TrimPrefix(countryCode, "+") + digits, nil
	default:
		return "+" + digits, nil
	}
}
