package catalog

// ParamItem is the route parameter holding the catalog item identifier.
const ParamItem = "item"

// RouteParams are the named path segments supplied by the router.
type RouteParams map[string]string

// Item returns the item identifier, or an empty string when the router supplied none.
func (p RouteParams) Item() string {
	return p[ParamItem]
}

// ItemURL builds the backend URL for item. The identifier is appended as-is:
// the router only hands over URL-safe path segments.
func ItemURL(baseURL, item string) string {
	return baseURL + "/catalog/" + item
}
