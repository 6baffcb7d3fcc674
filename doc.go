// Package ondilo provides a Go client library for the Ondilo ICO customer API,
// the cloud platform behind the ICO pool and spa water-quality monitors.
//
// # Authentication
//
// The API uses the OAuth2 authorization code grant. The vendor publishes a
// shared customer application, used by default, so most integrations only
// need a redirect URI:
//
//	client, err := ondilo.NewClient(
//	    ondilo.WithRedirectURI("https://example.com/callback"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	authURL, _ := client.AuthURL("")
//	fmt.Println("Visit:", authURL)
//
//	// After the user authorizes, exchange the redirect URL (or bare code):
//	token, err := client.RequestToken(ctx, redirectResponse)
//
// A previously obtained token skips the flow entirely:
//
//	client, err := ondilo.NewClient(ondilo.WithToken(token))
//
// When a request comes back unauthorized, the client refreshes the token
// once using the stored refresh token and retries the request. If that
// also fails, an AuthError is returned and the authorization flow must be
// rerun.
//
// # Basic Usage
//
// List pools and read the latest measures:
//
//	pools, err := client.ListPools(ctx)
//	for _, pool := range pools {
//	    measures, err := client.GetLastMeasures(ctx, pool.ID)
//	    for _, m := range measures {
//	        fmt.Printf("%s: %.1f\n", m.DataType, m.Value)
//	    }
//	}
//
// Historical series for one measure type:
//
//	history, err := client.GetMeasureHistory(ctx, pool.ID, ondilo.MeasureTemperature, ondilo.PeriodWeek)
//
// # Token Persistence
//
// Tokens can be persisted across process runs with a TokenStore:
//
//	store := ondilo.NewFileTokenStore("/path/to/token.json")
//	client, err := ondilo.NewClient(ondilo.WithTokenStore(store))
//
// or observed with a callback:
//
//	client, err := ondilo.NewClient(ondilo.WithTokenUpdater(func(t *oauth2.Token) {
//	    // persist t
//	}))
//
// # Error Handling
//
// Check for specific error types:
//
//	pools, err := client.ListPools(ctx)
//	if err != nil {
//	    if ondilo.IsAuthError(err) {
//	        // Authorization flow must be rerun
//	    } else if ondilo.IsNotFound(err) {
//	        // Resource doesn't exist
//	    } else if ondilo.IsRateLimited(err) {
//	        // Too many requests
//	    }
//	}
//
// # API Coverage
//
// The library supports the following customer API endpoints:
//
//   - Pools: list pools/spas, ICO device details, configured ranges, shares
//   - Measures: last sensor readings, historical series by period
//   - Recommendations: list pending, validate as done
//   - User: profile, measurement-unit preferences
//
// For more information, see https://interop.ondilo.com/docs/api/customer/v1/
package ondilo
