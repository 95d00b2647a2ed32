// Package format renders raw numeric amounts for display. The review core
// only hands over numbers plus a currency code; swapping in a locale-aware
// formatter never touches derived-state code.
package format

import "fmt"

// Amount formats a monetary amount with its currency code, e.g. "1200.00 MAD".
func Amount(value float64, currencyCode string) string {
	return fmt.Sprintf("%.2f %s", value, currencyCode)
}
