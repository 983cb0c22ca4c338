// Package lookbooksdk is the client-side counterpart of the Lookbook auth
// API. It owns the wire types and error shapes shared with the server, and
// provides a Session that attaches access tokens to outgoing requests,
// silently refreshes them on a 401, and replays the failed request exactly
// once.
package lookbooksdk
