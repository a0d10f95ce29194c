package engine

import (
	"github.com/sdiallo/woyofal/internal/config"
)

// snapshot is the full dependency set of a derived estimate. Two equal
// snapshots always produce the same estimate, so it doubles as the
// memoisation key.
type snapshot struct {
	rates config.Rates
	input Input
}

// Session owns the mutable state of one estimation session: the rate
// configuration and the raw input fields. Derived values are recomputed
// on demand and cached against the snapshot that produced them, so
// repeated reads with unchanged inputs do not recompute.
//
// A Session is owned by a single logical caller and mutated only by
// sequential actions; it is not safe for concurrent use.
type Session struct {
	rates config.Rates
	input Input

	cached    *Estimate
	cachedErr error
	cachedKey snapshot
}

// NewSession starts a session from the given rate configuration, in
// energy mode with empty fields.
func NewSession(rates config.Rates) *Session {
	return &Session{
		rates: rates,
		input: Input{Mode: ModeEnergy},
	}
}

// Rates returns the session's current rate configuration.
func (s *Session) Rates() config.Rates { return s.rates }

// Input returns the session's current raw input.
func (s *Session) Input() Input { return s.input }

// SetRates replaces the rate configuration, invalidating any cached
// estimate on change.
func (s *Session) SetRates(rates config.Rates) {
	s.rates = rates
}

// SetInput replaces the raw input fields, invalidating any cached
// estimate on change.
func (s *Session) SetInput(in Input) {
	s.input = in
}

// Reset replaces the rate configuration with a fresh copy of the
// built-in defaults.
func (s *Session) Reset() {
	s.rates = config.DefaultRates()
}

// Estimate resolves the current input against the current rates,
// reusing the cached result when neither has changed since the last
// call.
func (s *Session) Estimate() (Estimate, error) {
	key := snapshot{rates: s.rates, input: s.input}
	if s.cached != nil && key == s.cachedKey {
		return *s.cached, s.cachedErr
	}

	est, err := Resolve(s.input, s.rates)
	s.cached = &est
	s.cachedErr = err
	s.cachedKey = key
	return est, err
}

// Appliances projects the fixed usage scenarios for the given wattage
// under the session's current rates.
func (s *Session) Appliances(watts float64) []ApplianceRow {
	return Project(watts, s.rates)
}
