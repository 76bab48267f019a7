package food

import (
	"fmt"
	"strings"

	"fastfood/internal/pkg/errs"
)

// Currency is the currency a food is priced in.
type Currency string

const (
	// Som is the local currency. Revenue is always recorded in som.
	Som Currency = "som"
	USD Currency = "usd"
	RUB Currency = "rub"
)

// DefaultCurrency is used when a food is created without an explicit currency.
const DefaultCurrency = Som

// ParseCurrency maps a case-insensitive currency code to a Currency. An empty
// string yields DefaultCurrency; "rubl" is accepted as an alias of RUB.
func ParseCurrency(s string) (Currency, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	switch code {
	case "":
		return DefaultCurrency, nil
	case "rubl":
		return RUB, nil
	}

	c := Currency(code)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Currency) Validate() error {
	switch c {
	case Som, USD, RUB:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a supported currency", string(c)))
	}
}

// IsLocal reports whether prices in c need no conversion.
func (c Currency) IsLocal() bool {
	return c == Som
}

func (c Currency) String() string {
	return string(c)
}
