// Package bookingtests contains the booking API contract tests themselves and their
// supporting API.
//
// The suite is a fixed ordered sequence of six steps that share run-scoped state: a
// session token produced by the authentication step and a booking ID produced by the
// creation step. A step whose required state was never produced skips itself rather
// than failing, so one upstream failure reads as exactly one failure plus a chain of
// explained skips.
//
// Test harness infrastructure that is not specific to the booking domain, such as
// result accumulation and debug-output capture, is in the lower-level framework
// package; HTTP communication with the service is in the client package.
package bookingtests
