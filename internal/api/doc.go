// Package api provides the request core shared by every resource operation:
// session addressing, Basic authorization, URI composition and the
// single-call endpoint invoker.
//
// # Addressing
//
// Every request is addressed from a [Session] value carrying scheme, host,
// project collection and credentials. [BuildURI] turns a session and a
// [Request] into the absolute request URI, injecting the api-version contract
// parameter last so a caller-supplied value can never survive.
//
// # Invocation
//
// [Client.Do] performs exactly one HTTP call per invocation. There is no
// retry layer here: the service applies most effects asynchronously, so
// callers poll for outcomes instead of retrying calls.
//
// # Error Handling
//
// Failures split by layer:
//
//   - [NetworkError]: connection-level failure, no HTTP response received.
//   - [APIError]: non-success status, service error envelope parsed and the
//     raw body preserved.
//
// Sentinel errors are matched through errors.Is:
//
//	if errors.Is(err, api.ErrProjectNotFound) {
//	    // Handle missing project
//	}
//
// A 404 maps onto the sentinel named by the error's [ResourceType] tag, set
// by the operation that made the call via [WithResourceType].
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. It holds no per-session
// state; the session is an argument to every call, so one Client may serve
// many sessions from many goroutines at once.
package api
