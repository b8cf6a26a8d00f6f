package github

// SearchResult is one page of code-search hits mapped to their repositories,
// in the order the API returned them.
type SearchResult struct {
	TotalCount int               `json:"total_count"`        // Total hits reported by the API
	Incomplete bool              `json:"incomplete_results"` // Whether the API timed out while searching
	Matches    []RepositoryMatch `json:"matches"`            // Hits in server order
}

// Len returns the number of matches on this page.
func (r *SearchResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Matches)
}

// RepositoryMatch is a single search hit reduced to its owning repository.
// URL is always set; Description is empty when the repository has none.
type RepositoryMatch struct {
	URL          string `json:"url"`
	Description  string `json:"description"`
	FullName     string `json:"full_name,omitempty"`     // owner/repo
	ManifestPath string `json:"manifest_path,omitempty"` // Path of the matching Cargo.toml
}

// searchResponse is the subset of the /search/code payload we read.
// A missing or null "items" decodes to nil, which Search treats as a
// malformed body.
type searchResponse struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []searchItem `json:"items"`
}

type searchItem struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	HTMLURL    string `json:"html_url"`
	Repository struct {
		FullName    string  `json:"full_name"`
		HTMLURL     string  `json:"html_url"`
		Description *string `json:"description"`
	} `json:"repository"`
}
