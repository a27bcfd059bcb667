// Package api defines the JSON wire types and routes shared by the
// slidecraft backend server and its HTTP client.
//
// All paths carried over the wire are normalized to forward slashes by
// the side that produced them, so clients never need to care about the
// server's native separator.
package api
