package snapscript

// Status is the processing state of one file. Files advance from idle to
// processing when their annotation call starts, then to completed or error.
// The assembly stage never changes a file's status: marker-level failures
// are absorbed into the document itself.
type Status int

const (
	// StatusIdle means the file has not been processed yet.
	StatusIdle Status = iota
	// StatusProcessing means the file's annotation call is in flight.
	StatusProcessing
	// StatusCompleted means the file was annotated and will be assembled.
	StatusCompleted
	// StatusError means annotation failed; the file is excluded from the
	// document but does not stop the batch.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// FileStatus is a snapshot of one file's processing state.
type FileStatus struct {
	Name   string
	Status Status
	// Err holds the annotation failure message when Status is StatusError.
	Err string
}
