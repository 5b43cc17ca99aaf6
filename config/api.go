package config

// Cookie names shared between the storefront and the commerce backend.
const (
	SessionCookieName = "cart_session"
	CSRFCookieName    = "csrftoken"
)

// ConversionEvents lists the conversion relay endpoints accepted by
// /api/facebook/conversions/:event/.
func ConversionEvents() []string {
	return []string{"view-content", "add-to-cart", "initiate-checkout", "purchase"}
}
