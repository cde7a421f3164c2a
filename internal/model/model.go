// Package model declares the request and response shapes of the API.
//
// Request types carry binding tags (`json`, `query`, `param`, `form`,
// `header`, `cookie`, `file`) and `validate` constraints; they implement
// validation.Validatable. Response types only carry `json` tags and decide
// which fields ever reach the wire.
package model
