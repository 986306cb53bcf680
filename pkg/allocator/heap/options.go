package heap

type Options struct {
	// MaxAllocSize caps a single Allocate/Resize request in bytes. Larger
	// requests fail the same way heap exhaustion does. Zero selects the
	// memory available to the process.
	MaxAllocSize int `json:"max_alloc_size"`
}

var DefaultOptions = Options{}
