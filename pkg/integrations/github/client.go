package github

import (
	"context"
	"net/http"
	"regexp"

	"github.com/matzehuels/cratescout/pkg/config"
	"github.com/matzehuels/cratescout/pkg/errors"
	"github.com/matzehuels/cratescout/pkg/integrations"
)

var repoURLPattern = regexp.MustCompile(`https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:[/?#]|$)`)

// SearchClient runs code searches against the GitHub API.
// Every request carries the caller's User-Agent and Authorization headers.
type SearchClient struct {
	*integrations.Client
	baseURL string
}

// Option configures a [SearchClient].
type Option func(*SearchClient)

// WithBaseURL points the client at another API root, e.g. GitHub Enterprise
// or a test server.
func WithBaseURL(u string) Option { return func(c *SearchClient) { c.baseURL = u } }

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *SearchClient) { c.Client.WithHTTPClient(hc) }
}

// NewSearchClient creates a client authenticated with creds.
// Credentials that are missing or cannot be encoded as header values are
// rejected here, before any request is made.
func NewSearchClient(creds config.Credentials, opts ...Option) (*SearchClient, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Accept":        "application/vnd.github.v3+json",
		"User-Agent":    creds.ClientID,
		"Authorization": creds.AuthorizationHeader(),
	}

	c := &SearchClient{
		Client:  integrations.NewClient(headers),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchURL returns the URL [SearchClient.Search] will request for q.
func (c *SearchClient) SearchURL(q SearchQuery) (string, error) {
	return BuildSearchURL(c.baseURL, q)
}

// Search performs exactly one code-search request for q and returns the
// repositories of the hits in server order.
//
// Returns:
//   - INVALID_INPUT if the package name is empty
//   - NETWORK_ERROR if the request could not be completed
//   - a status code (UNAUTHORIZED, FORBIDDEN, RATE_LIMITED, ...) wrapping an
//     [errors.StatusError] for any non-200 answer
//   - DECODE_ERROR if the body is not JSON or has no items list
func (c *SearchClient) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	url, err := c.SearchURL(q)
	if err != nil {
		return nil, err
	}

	var data searchResponse
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}
	return toResult(data)
}

func toResult(data searchResponse) (*SearchResult, error) {
	if data.Items == nil {
		return nil, errors.New(errors.ErrCodeDecode, "search response has no items list")
	}

	res := &SearchResult{
		TotalCount: data.TotalCount,
		Incomplete: data.IncompleteResults,
		Matches:    make([]RepositoryMatch, 0, len(data.Items)),
	}
	for i, item := range data.Items {
		m, ok := toMatch(item)
		if !ok {
			return nil, errors.New(errors.ErrCodeDecode, "search item %d has no repository URL", i)
		}
		res.Matches = append(res.Matches, m)
	}
	return res, nil
}

func toMatch(item searchItem) (RepositoryMatch, bool) {
	repo := item.Repository
	u := integrations.NormalizeRepoURL(repo.HTMLURL)
	if u == "" && repo.FullName != "" {
		u = "https://github.com/" + repo.FullName
	}
	if u == "" {
		return RepositoryMatch{}, false
	}

	m := RepositoryMatch{
		URL:          u,
		FullName:     repo.FullName,
		ManifestPath: item.Path,
	}
	if repo.Description != nil {
		m.Description = *repo.Description
	}
	if m.FullName == "" {
		if owner, name, ok := ParseRepoURL(u); ok {
			m.FullName = owner + "/" + name
		}
	}
	return m, true
}

// ParseRepoURL extracts owner and repository name from a github.com URL.
func ParseRepoURL(u string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(u)
	if len(m) < 3 {
		return "", "", false
	}
	return m[1], m[2], true
}
