package runner

import m "gooze.dev/pkg/gooze/internal/model"

// applyMutation returns a fresh copy of originalBytes with the mutation's
// byte range replaced by its mutated text. originalBytes is never modified
// in place — the caller keeps it around to restore from on every exit path.
func applyMutation(originalBytes []byte, mutation m.Mutation) []byte {
	start := mutation.Location.ByteStart
	end := mutation.Location.ByteEnd

	out := make([]byte, 0, len(originalBytes)-(end-start)+len(mutation.MutatedText))
	out = append(out, originalBytes[:start]...)
	out = append(out, []byte(mutation.MutatedText)...)
	out = append(out, originalBytes[end:]...)

	return out
}
