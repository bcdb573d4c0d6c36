// Package services provides domain services that orchestrate business
// operations across multiple aggregates: creation-time order validation
// (which needs the product catalog and user directory) and geographic
// matching of open orders and drivers (which needs distances between
// entities no single aggregate owns).
package services
