package processor

import "context"

// Processor turns a dropped audio recording into transcript and notes files.
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}
