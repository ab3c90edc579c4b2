// Package options provides shared helpers for validating functional
// option configurations.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one input source was
// selected. Each entry in sources reports whether the corresponding
// source is set. noSourceMsg is returned as an error when nothing is
// set, multiSourceMsg when more than one is.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, isSet := range sources {
		if isSet {
			count++
			if count > 1 {
				return errors.New(multiSourceMsg)
			}
		}
	}
	if count == 0 {
		return errors.New(noSourceMsg)
	}
	return nil
}
