// Package teamleader provides types, interfaces, and helpers for working with
// the Teamleader CRM form API.
//
// # Overview
//
// The teamleader package defines the request structs, enumerations, and error
// taxonomy of the API, plus the Client interface grouped into resource
// clients (ContactsClient, CompaniesClient, InvoicesClient, DirectoryClient).
// A concrete implementation is provided by the tlclient package, which wires
// configuration and transport. Most consumers should import tlclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/teamkit-io/teamleader/pkg/teamleader"
//	  "github.com/teamkit-io/teamleader/pkg/tlclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := tlclient.NewWithCredentials("my-group", "my-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  id, err := cli.Contacts().Add(ctx, &teamleader.AddContactRequest{
//	    Forename: "Jan",
//	    Surname:  "Peeters",
//	    Email:    "jan@example.com",
//	    Country:  teamleader.String("BE"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = id
//	}
//
// # Pagination
//
// List endpoints return an Iterator: a lazy, forward-only sequence that
// fetches pages of 100 records on demand and terminates after the first
// empty page.
//
//	it := cli.Contacts().List(ctx, nil)
//	for it.HasNext() {
//	  contact, err := it.Next()
//	  if err != nil { break }
//	  _ = contact
//	}
//
// # Errors
//
// Invalid arguments fail locally with InvalidInputError before any request
// is sent. Remote failures are classified by status into
// AuthenticationError (401), BadRequestError (400), RateLimitExceededError
// (505 in Teamleader's convention), and UnknownAPIError, each carrying the
// body's reason plus the raw response. Helpers such as IsAuthentication and
// IsRateLimited make it easy to branch on common cases. The client never
// retries; every failure surfaces to the caller.
package teamleader
