package repository

import "fundsim/internal/simulate"

// ResultStore keeps evaluated simulation results addressable by ID so a
// client can fetch a past run without re-submitting its parameters.
type ResultStore interface {
	Save(id string, res *simulate.Result) error
	Get(id string) (*simulate.Result, bool)
}
