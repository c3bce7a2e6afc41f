//go:build netcore_release

package protocol

import "errors"

// assertFrameConsumed is the release-build counterpart of assert_debug.go: instead
// of panicking, an unconsumed frame tail fails the connection via a normal error.
func assertFrameConsumed(remaining int) error {
	if remaining != 0 {
		return errors.New(frameNotConsumedMessage(remaining))
	}
	return nil
}
