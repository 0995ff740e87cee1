package transport

// Endpoint is one of the fixed GET endpoints of the API.
type Endpoint int

const (
	// ListAllEmojis returns every emoji.
	ListAllEmojis Endpoint = iota
	// ListAllPacks returns every emoji pack.
	ListAllPacks
	// ListAllCategories returns the category names; position is identity.
	ListAllCategories
	// ListWebsiteStats returns the site statistics object.
	ListWebsiteStats
)

var endpointPaths = map[Endpoint]string{
	ListAllEmojis:     "/api",
	ListAllPacks:      "/api/packs",
	ListAllCategories: "/api?request=categories",
	ListWebsiteStats:  "/api?request=stats",
}

var endpointNames = map[Endpoint]string{
	ListAllEmojis:     "emojis",
	ListAllPacks:      "packs",
	ListAllCategories: "categories",
	ListWebsiteStats:  "stats",
}

// Path returns the endpoint path and query relative to the base URL.
func (e Endpoint) Path() string {
	return endpointPaths[e]
}

// String returns a short name used in logs and metrics labels.
func (e Endpoint) String() string {
	if name, ok := endpointNames[e]; ok {
		return name
	}
	return "unknown"
}
