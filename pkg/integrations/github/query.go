package github

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/cratescout/pkg/errors"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultCount is the page size used when a query does not set one.
const DefaultCount = 10

// Search qualifiers that restrict hits to Cargo manifests.
const (
	manifestFilename  = "Cargo"
	manifestExtension = "toml"
)

// SearchQuery describes one code search for a package name.
type SearchQuery struct {
	Package string // Package name, matched verbatim in file contents
	Count   int    // Page size; 0 means DefaultCount
}

// Terms returns the value of the q parameter: the package name followed by
// the in-file, filename and extension qualifiers.
func (q SearchQuery) Terms() string {
	return strings.Join([]string{
		q.Package,
		"in:file",
		"filename:" + manifestFilename,
		"extension:" + manifestExtension,
	}, " ")
}

// BuildSearchURL returns the code-search URL for q against baseURL.
//
// The result is sorted by index time, oldest first, and requests a single
// page of q.Count hits. The count is passed through unchecked; the API
// rejects values it does not accept.
func BuildSearchURL(baseURL string, q SearchQuery) (string, error) {
	if err := errors.ValidatePackageName(q.Package); err != nil {
		return "", err
	}
	count := q.Count
	if count == 0 {
		count = DefaultCount
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/search/code")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "parse base URL %q", baseURL)
	}

	params := url.Values{}
	params.Set("q", q.Terms())
	params.Set("per_page", strconv.Itoa(count))
	params.Set("sort", "indexed")
	params.Set("order", "asc")
	u.RawQuery = params.Encode()

	return u.String(), nil
}
