// Package service contains the application use cases. AppointmentService
// turns untrusted booking input into a stored appointment and notifies the
// clinic and the patient, reporting a uniform result to the HTTP layer.
//
// The package depends on domain entities and on the ports it declares or
// imports (store.AppointmentStore, AppointmentNotifier), never on concrete
// adapters. Token and credential handling lives in the auth subpackage.
package service
