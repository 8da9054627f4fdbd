// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO; external dependencies are limited
// to small utilities (record IDs, hint rate limiting).
package services
