// Package client implements the HTTP client for an OpenADR 3.0 VTN.
//
// A Client wraps a base URL and an authenticated http.Client, and exposes
// the VTN's resource operations: programs, events, reports, subscriptions,
// VENs, and VEN resources, each with list (filtered, paginated), get,
// create, update, and delete.
//
// Failed requests carrying an RFC 7807 body come back as *model.Problem;
// token endpoint failures as *auth.AuthError. Idempotent requests are
// retried on 429 and transient 5xx responses with exponential backoff.
//
//	ts, _ := auth.TokenSource(ctx, auth.Config{ ... })
//	c, _ := client.New(client.Config{BaseURL: "https://vtn.example/openadr3", TokenSource: ts})
//	programs, _ := c.ListPrograms(ctx, client.ListFilter{})
package client
