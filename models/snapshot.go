package models

// Snapshot is a serializable view of a fitted coordinate descent model,
// suitable for JSON round trips. The warm start slice is deliberately
// excluded; a restored model is read-only until it is refit.
type Snapshot struct {
	Options   *Options  `json:"options"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Result    *Result   `json:"result,omitempty"`
}

// Snapshot exports the fitted model state.
func (c *CoordDescent) Snapshot() (*Snapshot, error) {
	if c.opt == nil {
		return nil, ErrNoOptions
	}
	if c.coef == nil {
		return nil, ErrNotFitted
	}

	coef := make([]float64, len(c.coef))
	copy(coef, c.coef)

	opt := *c.opt
	opt.WarmStartBeta = nil

	return &Snapshot{
		Options:   &opt,
		Coef:      coef,
		Intercept: c.intercept,
		Result:    c.result,
	}, nil
}

// NewCoordDescentFromSnapshot restores a fitted model for prediction and
// scoring without refitting.
func NewCoordDescentFromSnapshot(s *Snapshot) (*CoordDescent, error) {
	if s == nil || s.Options == nil {
		return nil, ErrNoOptions
	}
	opt, err := s.Options.Validate()
	if err != nil {
		return nil, err
	}
	if s.Coef == nil {
		return nil, ErrNotFitted
	}

	coef := make([]float64, len(s.Coef))
	copy(coef, s.Coef)

	return &CoordDescent{
		opt:       opt,
		coef:      coef,
		intercept: s.Intercept,
		result:    s.Result,
	}, nil
}
