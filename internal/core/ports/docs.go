// Package ports declares the contracts between the application core and its
// adapters: the coordinator operations the inbound adapters drive and the
// journal the core writes to.
package ports
