// Package pg provides postgres plumbing for session.PGStore: env-driven
// pool configuration, retrying startup connect, a healthcheck adapter and a
// goose-based migrations runner that understands embedded filesystems.
package pg
