// Package service contains the application use cases. It coordinates domain
// objects with the repositories defined in internal/store and translates
// store failures into the sentinel errors the API layer maps to responses.
//
// Services receive their dependencies through constructor injection and
// never depend on a concrete database implementation.
package service
