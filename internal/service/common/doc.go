// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client for the robot service with
// per-call timeouts and a health check.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
