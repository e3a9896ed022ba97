// Package format turns raw on-chain integers into display strings.
package format

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// TokenDecimals is the USDC precision.
	TokenDecimals = 6
	// EtherDecimals is the native currency precision.
	EtherDecimals = 18

	gweiDecimals        = 9
	defaultAddressChars = 6
	minFractionDigits   = 2
	maxFractionDigits   = 6
)

// Address shortens an address to its first and last length characters.
func Address(address string, length int) string {
	if address == "" {
		return ""
	}
	if length <= 0 {
		length = defaultAddressChars
	}
	if len(address) <= 2*length {
		return address
	}
	return address[:length] + "..." + address[len(address)-length:]
}

// TransactionHash shortens a hash to 0x + 8 leading and 8 trailing characters.
func TransactionHash(hash string) string {
	if hash == "" {
		return ""
	}
	if len(hash) <= 18 {
		return hash
	}
	return hash[:10] + "..." + hash[len(hash)-8:]
}

// Balance renders a raw integer amount scaled by decimals.
// Ether-precision amounts use six fixed fraction digits, everything else keeps
// between two and six fraction digits with grouped thousands.
func Balance(raw string, decimals int) string {
	if raw == "" {
		return "0"
	}
	value, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return "0"
	}

	scaled := new(big.Rat).SetFrac(value, pow10(decimals))
	if decimals == EtherDecimals {
		return scaled.FloatString(maxFractionDigits)
	}

	return groupDecimal(trimFraction(scaled.FloatString(maxFractionDigits), minFractionDigits))
}

// Units converts a raw integer amount into display units.
func Units(raw string, decimals int) float64 {
	value, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return 0
	}
	return UnitsOf(value, decimals)
}

// UnitsOf converts a raw integer into display units.
func UnitsOf(value *big.Int, decimals int) float64 {
	if value == nil {
		return 0
	}
	f, _ := new(big.Rat).SetFrac(value, pow10(decimals)).Float64()
	return f
}

// DateTime renders a block timestamp in UTC.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

// GasPrice renders a wei gas price in Gwei.
func GasPrice(gasPrice string) string {
	value, ok := new(big.Int).SetString(strings.TrimSpace(gasPrice), 10)
	if !ok {
		value = new(big.Int)
	}
	return new(big.Rat).SetFrac(value, pow10(gweiDecimals)).FloatString(2) + " Gwei"
}

// GasUsed renders gas used, accepting hex (0x-prefixed) or decimal input.
func GasUsed(gasUsed string) string {
	gasUsed = strings.TrimSpace(gasUsed)

	var (
		value uint64
		err   error
	)
	if strings.HasPrefix(gasUsed, "0x") || strings.HasPrefix(gasUsed, "0X") {
		value, err = strconv.ParseUint(gasUsed[2:], 16, 64)
	} else {
		value, err = strconv.ParseUint(gasUsed, 10, 64)
	}
	if err != nil {
		return "0"
	}
	return humanize.Comma(int64(value))
}

// ParseUnits converts a plain decimal string into raw integer units.
// It reports false for malformed input or more fraction digits than decimals.
func ParseUnits(amount string, decimals int) (*big.Int, bool) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, false
	}

	negative := strings.HasPrefix(amount, "-")
	amount = strings.TrimPrefix(amount, "-")

	whole, fraction, _ := strings.Cut(amount, ".")
	if whole == "" && fraction == "" {
		return nil, false
	}
	if len(fraction) > decimals || !digitsOnly(whole) || !digitsOnly(fraction) {
		return nil, false
	}

	fraction += strings.Repeat("0", decimals-len(fraction))
	value, ok := new(big.Int).SetString(whole+fraction, 10)
	if !ok {
		return nil, false
	}
	if negative {
		value.Neg(value)
	}
	return value, true
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func trimFraction(s string, keep int) string {
	whole, fraction, ok := strings.Cut(s, ".")
	if !ok {
		return s + "." + strings.Repeat("0", keep)
	}
	fraction = strings.TrimRight(fraction, "0")
	if len(fraction) < keep {
		fraction += strings.Repeat("0", keep-len(fraction))
	}
	return whole + "." + fraction
}

func groupDecimal(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	whole, fraction, _ := strings.Cut(s, ".")
	w, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + s
	}
	return sign + humanize.BigComma(w) + "." + fraction
}
