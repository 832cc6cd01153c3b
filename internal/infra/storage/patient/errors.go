package patient

import "errors"

var (
	// ErrPatientNotFound is returned when the patient does not exist
	ErrPatientNotFound = errors.New("patient.repository: patient not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("patient.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("patient.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("patient.repository: failed to scan row")
)
