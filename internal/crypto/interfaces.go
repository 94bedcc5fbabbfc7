package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/fingerprinter_mock.go -package=mock

// Fingerprinter derives a stable, non-reversible identifier for a card
// number so repeated validations of the same card can be correlated in the
// history without storing the number itself.
type Fingerprinter interface {
	// Fingerprint returns the hex-encoded keyed digest of the digits of
	// cardNumber. Separators are ignored, so "4111 1111" and "41111111"
	// share a fingerprint.
	Fingerprint(cardNumber string) string
}
