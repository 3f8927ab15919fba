package validators

// Field paths understood by [Rule]. A path is "<section>.<key>" where
// section is user_data or custom_data.
const (
	PathExternalID = "user_data.external_id"
	PathValue      = "custom_data.value"
	PathCurrency   = "custom_data.currency"
)

// Rule lists the field paths an event must carry and the ones it must not.
type Rule struct {
	Required  []string
	Forbidden []string
}

// Rules is the schema table keyed by event_name. Names missing from the
// table are rejected.
type Rules map[string]Rule

// DefaultRules returns the event schema table the relay ships with.
// Anonymous browsing events must not carry a customer identifier; events
// that identify a customer must.
func DefaultRules() Rules {
	anonymous := Rule{Forbidden: []string{PathExternalID}}

	return Rules{
		"PageView":             anonymous,
		"ViewContent":          anonymous,
		"Search":               anonymous,
		"AddToCart":            anonymous,
		"AddToWishlist":        anonymous,
		"InitiateCheckout":     anonymous,
		"AddPaymentInfo":       anonymous,
		"Contact":              anonymous,
		"Lead":                 {Required: []string{PathExternalID}},
		"CompleteRegistration": {Required: []string{PathExternalID}},
		"Purchase":             {Required: []string{PathValue, PathCurrency}},
		"TestEvent":            {},
	}
}
