package engine

import "fmt"

// Rules is the immutable configuration of a round.
type Rules struct {
	GridSize  int
	RoundTime float64 // Seconds
	BatchSize int     // Blocks offered at once
	Colors    int     // Palette size K
	Catalog   Catalog
	Phases    PhaseTable
	Scoring   Scoring
}

// ValidationError describes a configuration that cannot run.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the rules once at start-up. Anything it rejects would
// otherwise surface mid-round (empty draws, impossible shapes).
func (r Rules) Validate() error {
	if r.GridSize <= 0 {
		return ValidationError{
			Code:    "INVALID_GRID",
			Message: fmt.Sprintf("grid size must be positive, got %d", r.GridSize),
		}
	}
	if r.RoundTime <= 0 {
		return ValidationError{
			Code:    "INVALID_ROUND_TIME",
			Message: fmt.Sprintf("round time must be positive, got %g", r.RoundTime),
		}
	}
	if r.BatchSize < 1 {
		return ValidationError{
			Code:    "INVALID_BATCH",
			Message: fmt.Sprintf("batch size must be at least 1, got %d", r.BatchSize),
		}
	}
	if r.Colors < 1 {
		return ValidationError{
			Code:    "INVALID_COLORS",
			Message: fmt.Sprintf("palette must have at least 1 color, got %d", r.Colors),
		}
	}

	if err := r.validateCatalog(); err != nil {
		return err
	}
	if err := r.validatePhases(); err != nil {
		return err
	}
	return r.validateScoring()
}

func (r Rules) validateCatalog() error {
	if len(r.Catalog) == 0 {
		return ValidationError{Code: "EMPTY_CATALOG", Message: "block catalog is empty"}
	}

	for i, s := range r.Catalog {
		label := s.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		if s.Weight <= 0 {
			return ValidationError{
				Code:    "INVALID_WEIGHT",
				Message: fmt.Sprintf("shape %s: weight must be positive, got %d", label, s.Weight),
			}
		}
		if s.Rows() == 0 || s.Cols() == 0 {
			return ValidationError{
				Code:    "EMPTY_SHAPE",
				Message: fmt.Sprintf("shape %s has no rows or columns", label),
			}
		}
		for _, row := range s.Cells {
			if len(row) != s.Cols() {
				return ValidationError{
					Code:    "RAGGED_SHAPE",
					Message: fmt.Sprintf("shape %s is not rectangular", label),
				}
			}
		}
		if s.Area() == 0 {
			return ValidationError{
				Code:    "EMPTY_SHAPE",
				Message: fmt.Sprintf("shape %s has no occupied cells", label),
			}
		}
		if s.Rows() > r.GridSize || s.Cols() > r.GridSize {
			return ValidationError{
				Code: "SHAPE_TOO_LARGE",
				Message: fmt.Sprintf("shape %s is %dx%d, grid is %dx%d",
					label, s.Rows(), s.Cols(), r.GridSize, r.GridSize),
			}
		}
	}
	return nil
}

// validatePhases requires phases listed easiest first: strictly descending
// starts, unique numbers and windows that do not overlap.
func (r Rules) validatePhases() error {
	if len(r.Phases) == 0 {
		return ValidationError{Code: "EMPTY_PHASES", Message: "phase table is empty"}
	}
	seen := make(map[int]bool, len(r.Phases))
	for i, p := range r.Phases {
		if seen[p.Number] {
			return ValidationError{
				Code:    "INVALID_PHASE",
				Message: fmt.Sprintf("phase %d is listed twice", p.Number),
			}
		}
		seen[p.Number] = true

		if i > 0 {
			prev := r.Phases[i-1]
			if p.Start >= prev.Start {
				return ValidationError{
					Code: "INVALID_PHASE",
					Message: fmt.Sprintf("phase %d: start %g must be below start %g of phase %d",
						p.Number, p.Start, prev.Start, prev.Number),
				}
			}
			if prev.End <= p.Start {
				return ValidationError{
					Code: "INVALID_PHASE",
					Message: fmt.Sprintf("phase %d overlaps phase %d: end %g is not above start %g",
						prev.Number, p.Number, prev.End, p.Start),
				}
			}
		}

		if p.Multiplier <= 0 {
			return ValidationError{
				Code:    "INVALID_PHASE",
				Message: fmt.Sprintf("phase %d: multiplier must be positive, got %g", p.Number, p.Multiplier),
			}
		}
		if p.End > p.Start {
			return ValidationError{
				Code:    "INVALID_PHASE",
				Message: fmt.Sprintf("phase %d: end %g is above start %g", p.Number, p.End, p.Start),
			}
		}
	}
	return nil
}

func (r Rules) validateScoring() error {
	if r.Scoring.ComboMultiplier <= 0 {
		return ValidationError{
			Code:    "INVALID_SCORING",
			Message: fmt.Sprintf("combo multiplier must be positive, got %g", r.Scoring.ComboMultiplier),
		}
	}
	if r.Scoring.BasePoints < 0 {
		return ValidationError{
			Code:    "INVALID_SCORING",
			Message: fmt.Sprintf("base points must not be negative, got %d", r.Scoring.BasePoints),
		}
	}
	for _, k := range r.Scoring.TableSizes() {
		if k <= 0 || r.Scoring.LineTable[k] < 0 {
			return ValidationError{
				Code:    "INVALID_SCORING",
				Message: fmt.Sprintf("line table entry %d: %d", k, r.Scoring.LineTable[k]),
			}
		}
	}
	return nil
}
