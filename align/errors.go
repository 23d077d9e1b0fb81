package align

import "errors"

// ErrNoMatch indicates a FastDTWBD call between the current text and
// audio file returned an empty path — skip_penalty is too low relative
// to how dissimilar the two files are, or the files genuinely don't
// correspond. The coordinator aborts the whole run rather than guessing.
var ErrNoMatch = errors.New("align: no match between current text and audio file")

// ErrExternalTool wraps a failure from an external collaborator — the
// transcoder, the speech synthesizer or the featurizer — so callers can distinguish
// "the tool ran and found nothing" (ErrNoMatch) from "the tool itself
// failed to run".
var ErrExternalTool = errors.New("align: external tool failed")
