package models

// CardType is the human-readable name of a card network as reported by the
// validator service in the "type" field of a validation response.
type CardType string

const (
	// Visa covers every number starting with 4.
	Visa CardType = "Visa"

	// MasterCard covers numbers starting with 51 through 55.
	MasterCard CardType = "MasterCard"

	// AmericanExpress covers numbers starting with 34 or 37.
	AmericanExpress CardType = "American Express"

	// Discover covers every number starting with 6.
	Discover CardType = "Discover"

	// UnknownCardType is reported when no prefix rule matches.
	UnknownCardType CardType = "Unknown"
)

// String implements fmt.Stringer.
func (c CardType) String() string {
	return string(c)
}
