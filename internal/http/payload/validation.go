package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var (
	addressRegexp = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	hashRegexp    = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
)

// ValidateAddress reports a malformed account address under the "address" field.
func ValidateAddress(address string) error {
	return validation.Errors{
		"address": validation.Validate(address, validation.Required, validation.Match(addressRegexp)),
	}.Filter()
}

// ValidateHash reports a malformed transaction hash under the "hash" field.
func ValidateHash(hash string) error {
	return validation.Errors{
		"hash": validation.Validate(hash, validation.Required, validation.Match(hashRegexp)),
	}.Filter()
}
