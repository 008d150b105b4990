// Package store declares the persistence contracts used by the services:
// review schedules keyed by (user, topic) and recorded exam attempts.
package store
