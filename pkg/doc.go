// Package pkg provides the libraries behind cratescout, a tool that finds
// GitHub repositories whose Cargo.toml mentions a given crate.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [config] - Credential loading (environment, then TOML file)
//  2. [integrations] - Shared HTTP client and the GitHub code-search client
//  3. [render] - Fixed-width table and JSON output
//  4. [errors] - Error codes and input validation
//  5. [observability] - Hooks for instrumenting outgoing requests
//  6. [buildinfo] - Version information injected at build time
//
// # Data Flow
//
//	package name + count
//	         ↓
//	    [config] (credentials)
//	         ↓
//	    [integrations/github] (build query, GET /search/code, decode)
//	         ↓
//	    [render] (table or JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/cratescout/pkg/config"
//	    "github.com/matzehuels/cratescout/pkg/integrations/github"
//	    "github.com/matzehuels/cratescout/pkg/render"
//	)
//
//	creds, err := config.Loader{}.Load()
//	if err != nil {
//	    return err
//	}
//	client, err := github.NewSearchClient(creds)
//	if err != nil {
//	    return err
//	}
//	res, err := client.Search(ctx, github.SearchQuery{Package: "serde", Count: 10})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(render.Table(res))
//
// Every failure is returned to the caller; nothing is retried or cached.
//
// [config]: https://pkg.go.dev/github.com/matzehuels/cratescout/pkg/config
// [integrations]: https://pkg.go.dev/github.com/matzehuels/cratescout/pkg/integrations
// [render]: https://pkg.go.dev/github.com/matzehuels/cratescout/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/cratescout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cratescout/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cratescout/pkg/buildinfo
//
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/cratescout/pkg/integrations/github
package pkg
