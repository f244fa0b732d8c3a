// Package redis provides a small connection helper around go-redis: URL
// based configuration from the environment, retrying startup connect with a
// liveness PING, and a healthcheck adapter. Pair it with
// session.NewRedisStore for redis-backed sessions.
package redis
