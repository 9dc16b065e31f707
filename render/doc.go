// Package render writes collection documents and error envelopes to HTTP
// responses with the JSON:API media type.
package render
