package usecase

import "errors"

var (
	// ErrApplicationExists means the seeker already applied to this job.
	ErrApplicationExists = errors.New("application already exists for this job and seeker")
	// ErrInvalidStatus means the requested application status is not one of the known values.
	ErrInvalidStatus = errors.New("invalid application status")
	// ErrEvaluationFailed wraps provider transport errors and unparseable responses.
	ErrEvaluationFailed = errors.New("semantic evaluation failed")
)
