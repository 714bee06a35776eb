// Package domain contains the appointment entity and the fixed catalogue of
// medical services offered by the clinic. It has no knowledge of storage,
// transport or delivery; every value it hands out has already passed its
// invariants.
package domain
