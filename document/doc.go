// Package document defines the JSON:API collection document shape produced
// by the collection normalizer: navigation links, pagination metadata and
// the member/included payload arrays.
package document
