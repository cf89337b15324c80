// Package speech turns spoken input into text. The planner only ever sees a
// Recognizer, so the voice loop works the same whether audio comes from a
// microphone or typed input stands in for it.
package speech

import (
	"context"
	"errors"
)

// ErrNotUnderstood is returned when audio was captured but no transcript
// could be produced. Callers should reprompt rather than abort the loop.
var ErrNotUnderstood = errors.New("speech not understood")

// Recognizer produces one utterance of text per call.
type Recognizer interface {
	// Listen blocks until an utterance is available or ctx is done.
	Listen(ctx context.Context) (string, error)
}
