// Package mocks holds hand-written test doubles for the booking service's
// ports: the appointment workflow, its store and notifier, the token service
// and the client credential verifier.
//
// Each mock exposes one Fn field per method. A nil Fn falls back to a fixed
// result field (for example MockAppointmentService.Result), so most tests
// only set what they assert on:
//
//	svc := &mocks.MockAppointmentService{
//		Result: service.CreateAppointmentResult{Success: true, AppointmentID: "CITA-1-abc"},
//	}
//	handler := api.NewAppointmentHandler(svc, false)
//
// Some mocks also record the last call, e.g. LastInput, so tests can check
// what the caller passed through.
package mocks
