// Package tmdb provides a client for The Movie Database (TMDB) v3 REST API.
//
// Every endpoint is modelled as a command: a small struct holding the path
// parameters and the query parameters of one request. Commands are executed
// through a Client, which appends the API key and delegates the HTTP round
// trip to a pluggable Executor.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: holds the base URL, API key, executor and logger
//   - Executor: performs the HTTP call and maps the response (HTTPExecutor,
//     middleware-wrapped executor, RateLimitedExecutor)
//   - Commands: one struct per endpoint (MovieDetails, TVSearch, FindByID, ...)
//   - Types: records mirroring the upstream JSON, with nullability normalised
//   - Errors: RequestError, DecodeError and APIError with classification helpers
//
// # Usage
//
//	client, err := tmdb.NewClient(
//		os.Getenv("TMDB_API_KEY"),
//		tmdb.WithLogger(logger),
//		tmdb.WithTimeout(10*time.Second),
//		tmdb.WithRateLimit(40, 20),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	movie, err := tmdb.MovieDetails{MovieID: 550, Language: "en-US"}.Execute(ctx, client)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := tmdb.MovieSearch{Query: "alien", Year: 1979}.Execute(ctx, client)
//
// # Error Handling
//
// Transport failures are returned as *RequestError, undecodable bodies as
// *DecodeError and non-2xx responses as *APIError:
//
//	var apiErr *tmdb.APIError
//	if errors.As(err, &apiErr) && apiErr.IsValidation() {
//		fmt.Println(apiErr.Errors)
//	}
//	if errors.Is(err, tmdb.ErrNotFound) {
//		// resource does not exist upstream
//	}
package tmdb
