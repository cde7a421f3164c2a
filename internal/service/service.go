// Package service contains the request-independent logic of every route.
//
// It receives already validated values from the handler layer, consults the
// repository layer where needed and returns response shapes. Nothing here is
// persisted: every operation is a single-shot transformation.
package service
