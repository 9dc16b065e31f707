// Package ecode defines the business error codes used by the response
// rendering layer. Codes mirror their closest HTTP status negated, so a
// reader can place an envelope without a lookup table.
package ecode
