// Package utils provides small helpers shared across the relay: SHA-256
// digests for identity fields, JSON response writing, the outbound HTTP
// client constructor, and identifier generation.
package utils
