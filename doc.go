// Package prof is a client for the prof profile service: authenticated
// CRUD on user profile records, optional image upload, a generic "spell"
// invocation endpoint, and a health probe.
//
// # Overview
//
// A Client holds a base URL and an optional signing identity:
//
//	client := prof.New("https://prof.example.com", prof.WithSigner(signer))
//
//	profile, err := client.CreateProfile(ctx,
//		prof.NewProfileBuilder().
//			Name("Ada Lovelace").
//			Email("ada@example.com").
//			Field("bio", "Analyst").
//			Build(),
//		nil)
//
// Every authenticated call mints fresh auth parameters: the signer's
// public key as uuid, a millisecond timestamp, a single-use random nonce,
// and a signature over the timestamp. Calls without a configured signer
// fail with an AuthError before any network I/O.
//
// # Error Handling
//
// Failures are typed and matched with errors.As: HTTPError for transport
// failures, SerializationError for malformed JSON where JSON was
// mandatory, ServiceError for failures the service announced (or response
// shapes the client could not recognize), AuthError for a missing signer,
// NotFoundError for 404s and missing images, and ValidationError for 400s
// carrying a details list. Errors are returned to the caller as is, never
// retried or swallowed.
//
// # Concurrency
//
// A configured Client is safe for concurrent use; operations never mutate
// it. Requests honor context cancellation. The client applies no retries
// and no timeouts of its own beyond those of its http.Client.
//
// # Signing
//
// The signing scheme is an external capability behind the Signer
// interface: a hex public key plus sign(message). The client treats it as
// authoritative and never inspects signatures.
package prof
