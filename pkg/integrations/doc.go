// Package integrations provides the HTTP plumbing shared by API clients.
//
// # Overview
//
// [Client] performs a single GET, applies default headers, maps non-200
// statuses onto [errors.Code] values and decodes JSON bodies. There is no
// retry, backoff or caching: a request either succeeds once or its error is
// returned to the caller.
//
// Service-specific clients live in subpackages:
//
//   - [github]: GitHub code search for Cargo manifests
//
// # Status Mapping
//
//   - 200: body decoded into the target value
//   - 401: UNAUTHORIZED
//   - 403/429 with an exhausted rate limit: RATE_LIMITED
//   - other 403: FORBIDDEN
//   - 404: NOT_FOUND
//   - anything else: REMOTE_STATUS
//
// Every status error wraps an [errors.StatusError] so callers can report the
// numeric status with [errors.StatusCode].
//
// [github]: github.com/matzehuels/cratescout/pkg/integrations/github
// [errors.Code]: github.com/matzehuels/cratescout/pkg/errors.Code
// [errors.StatusError]: github.com/matzehuels/cratescout/pkg/errors.StatusError
// [errors.StatusCode]: github.com/matzehuels/cratescout/pkg/errors.StatusCode
package integrations
