// Package openapi publishes the application record as an OpenAPI 3 document
// so other services can validate submissions against the same constraints.
package openapi
