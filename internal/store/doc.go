// Package store defines the persistence port for appointments together with
// the errors every adapter reports through. Adapters live under
// internal/platform; the workflow in internal/service only sees the
// interfaces declared here.
package store
