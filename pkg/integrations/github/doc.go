// Package github searches GitHub code for Cargo manifests that mention a
// package.
//
// # Overview
//
// A search is a single GET to https://api.github.com/search/code. The query
// is the package name plus the qualifiers in:file, filename:Cargo and
// extension:toml; results are sorted by index time, oldest first, and only
// one page of [SearchQuery.Count] hits is fetched.
//
// # Usage
//
//	client, err := github.NewSearchClient(creds)
//	if err != nil {
//	    return err
//	}
//
//	res, err := client.Search(ctx, github.SearchQuery{Package: "serde", Count: 10})
//	if err != nil {
//	    return err
//	}
//
//	for i, m := range res.Matches {
//	    fmt.Println(i, m.URL, m.Description)
//	}
//
// # Authentication
//
// The code-search endpoint requires authentication. [config.Credentials]
// supplies the Authorization header (a personal access token) and the
// User-Agent header (the caller's GitHub username).
//
// # Errors
//
// Nothing is retried. Any non-200 answer is returned as an error carrying the
// numeric status; see [integrations] for the status-to-code mapping.
//
// [config.Credentials]: github.com/matzehuels/cratescout/pkg/config.Credentials
// [integrations]: github.com/matzehuels/cratescout/pkg/integrations
package github
