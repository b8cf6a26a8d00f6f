package render

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/cratescout/pkg/integrations/github"
)

type jsonOutput struct {
	Package    string                   `json:"package,omitempty"`
	TotalCount int                      `json:"total_count"`
	Incomplete bool                     `json:"incomplete_results"`
	Matches    []github.RepositoryMatch `json:"matches"`
}

// JSON writes res to w as indented JSON. pkg is recorded alongside the
// matches when non-empty. Matches is always an array, never null.
func JSON(w io.Writer, pkg string, res *github.SearchResult) error {
	out := jsonOutput{Package: pkg, Matches: []github.RepositoryMatch{}}
	if res != nil {
		out.TotalCount = res.TotalCount
		out.Incomplete = res.Incomplete
		if res.Matches != nil {
			out.Matches = res.Matches
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
