package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// OctetCount is the number of dot-separated segments in an IPv4 literal
const OctetCount = 4

// IPLiteralError describes why a raw IP literal was rejected
type IPLiteralError struct {
	Raw    string
	Reason string
}

func (e *IPLiteralError) Error() string {
	return fmt.Sprintf("invalid IP address %q: %s", e.Raw, e.Reason)
}

// ValidateIPLiteral checks that raw is a dotted quad with every octet in
// [0, 255]. Octets are parsed with strconv.Atoi: "010" and "+1" pass, " 1"
// does not. No range or reservation checks are made.
func ValidateIPLiteral(raw string) error {
	octets := strings.Split(raw, ".")
	if len(octets) != OctetCount {
		return &IPLiteralError{
			Raw:    raw,
			Reason: fmt.Sprintf("expected %d octets, got %d", OctetCount, len(octets)),
		}
	}

	for i, octet := range octets {
		v, err := strconv.Atoi(octet)
		if err != nil {
			return &IPLiteralError{Raw: raw, Reason: fmt.Sprintf("octet %d %q is not a number", i+1, octet)}
		}
		if v < 0 || v > 255 {
			return &IPLiteralError{Raw: raw, Reason: fmt.Sprintf("octet %d %d out of range 0-255", i+1, v)}
		}
	}

	return nil
}

// IsValidIPLiteral is ValidateIPLiteral as a predicate
func IsValidIPLiteral(raw string) bool {
	return ValidateIPLiteral(raw) == nil
}
