// Package tlclient wires configuration and transport into a concrete
// teamleader.Client.
//
// The package is intentionally small: it validates the credential pair,
// normalizes the API host, and hands off to the internal implementation.
// All request shaping, validation, and pagination behavior is documented in
// the teamleader package.
//
//	cli, err := tlclient.New(&teamleader.Config{
//	  Group:  "my-group",
//	  Secret: "my-secret",
//	})
package tlclient
