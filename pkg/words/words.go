// Package words converts rupee amounts into their English phrase using the
// Indian numbering system (crore, lakh, thousand).
package words

import "strings"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// belowThousand converts 0-999. Zero yields the empty string so callers can
// omit empty magnitude groups entirely.
func belowThousand(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + ones[n%10]
	default:
		if n%100 == 0 {
			return ones[n/100] + " Hundred"
		}
		return ones[n/100] + " Hundred " + belowThousand(n%100)
	}
}

// Number converts a non-negative integer into Indian-numbering words.
// Groups decompose as crore (10^7), lakh (10^5), thousand (10^3) and the
// final sub-thousand remainder; empty groups are omitted. The crore group is
// unbounded and recurses through Number, so amounts in the thousands of
// crores read as "Two Thousand Crore" rather than overflowing the tables.
func Number(n int64) string {
	if n == 0 {
		return "Zero"
	}

	crores := n / 10_000_000
	lakhs := (n % 10_000_000) / 100_000
	thousands := (n % 100_000) / 1_000
	remainder := n % 1_000

	var parts []string
	if crores > 0 {
		parts = append(parts, Number(crores)+" Crore")
	}
	if lakhs > 0 {
		parts = append(parts, belowThousand(lakhs)+" Lakh")
	}
	if thousands > 0 {
		parts = append(parts, belowThousand(thousands)+" Thousand")
	}
	if remainder > 0 {
		parts = append(parts, belowThousand(remainder))
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// Amount renders the full currency phrase for whole rupees plus an optional
// paise remainder (0-99): "<rupees> Rupees[ and <paise> Paise] Only".
func Amount(rupees, paise int64) string {
	phrase := Number(rupees) + " Rupees"
	if paise > 0 {
		phrase += " and " + Number(paise) + " Paise"
	}
	return phrase + " Only"
}
