// Package repository owns the data the service layer reads.
//
// The only data in this API is the person directory: a fixed, read-only set
// of known person IDs answering "does this ID exist?". It lives in memory by
// default or in a Redis set when Redis is configured.
package repository
