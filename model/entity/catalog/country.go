package catalog

// Country is a supported shipping country.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
