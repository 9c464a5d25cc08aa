// Package services implements the driving port interfaces.
// Services hold the lookup policy (sequencing, fan-out, truncation and
// degradation) and orchestrate calls to driven ports.
//
// Services are pure Go with no CGO or external dependencies.
package services
