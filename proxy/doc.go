// Package proxy demonstrates the Proxy pattern: a stand-in object with the
// same interface as the real subject, adding access control or caching
// without the client noticing.
//
// Intent: provide a surrogate or placeholder for another object to control
// access to it.
//
// Applicability:
//   - The real subject is expensive to reach (remote service, slow
//     download) and results can be reused.
//   - Access should be intercepted transparently: clients keep the same
//     interface whether they talk to the subject or the proxy.
//
// Trade-offs: the proxy must answer the staleness question the subject never
// had — here entries expire after a TTL. A caching proxy also changes
// failure behavior: a cached answer can outlive a subject that has since
// gone away.
//
// The demo downloads a popular-videos list and two videos through the slow
// library, then again through the caching proxy, and prints the time the
// cache saved.
package proxy
