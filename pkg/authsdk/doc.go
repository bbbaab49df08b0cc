/*
Package authsdk provides a client SDK for the Instamedia authentication service.

# Overview

The service keeps sessions in two HTTP-only cookies: a short-lived access
token and a long-lived refresh token. Client wraps an http.Client with a
cookie jar so those cookies round-trip between calls the same way a browser
would.

	client, err := authsdk.NewClient("https://auth.example.com")

	// Create an account; an activation link is mailed to the address.
	_, err = client.Register(ctx, authsdk.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})

	// Activate with the token from the link, then log in.
	_, err = client.Activate(ctx, token)
	login, err := client.Login(ctx, authsdk.LoginRequest{
		EmailOrUsername: "alice",
		Password:        "Passw0rd!",
	})

	// Authenticated calls use the cookies set by Login.
	me, err := client.Me(ctx)

# Errors

Every non-success response is returned as *APIError carrying the HTTP status
and the server's message. Login against an inactive account returns an
*APIError with NeedsActivation set.

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.NeedsActivation {
		// a fresh activation link was sent to apiErr.Email
	}
*/
package authsdk
