package commute

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates a stage input with nothing to aggregate or plot.
var ErrEmptyDataset = errors.New("empty dataset")

// ErrUnknownStage indicates a stage name that is not recognized.
var ErrUnknownStage = errors.New("unknown stage")

// StageError represents a failure inside a pipeline stage.
type StageError struct {
	Stage     Stage
	Component string // "data", "stats", "output", "render"
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %q failed (%s): %v", e.Stage, e.Component, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, component string, err error) *StageError {
	return &StageError{
		Stage:     stage,
		Component: component,
		Err:       err,
	}
}
