// Package graphql builds the GraphQL documents sent to the GitHub API and
// defines the transport contract used to execute them.
//
// Builders are pure: they only assemble a query string and its variables.
// Execution happens behind the Transport interface, which reports every call
// as an Envelope holding either the raw data payload or an error. Stages never
// look past the envelope.
//
// Example usage:
//
//	doc := graphql.BuildFetchAllDiscussionsQuery("octo", "hello", nil)
//	res := graphql.Execute[models.DiscussionsResponse](ctx, transport, doc)
//	if res.Err != nil {
//	    return res.Err
//	}
package graphql
