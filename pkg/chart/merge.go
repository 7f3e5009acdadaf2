package chart

import (
	"github.com/mitchellh/copystructure"

	apperr "github.com/matzehuels/tabchart/pkg/errors"
)

// Merge copies every key of overlay into dst, replacing existing keys.
// Values are deep-copied so dst never aliases the overlay. A nil overlay is
// a no-op.
func Merge(dst Section, overlay map[string]any) error {
	for key, value := range overlay {
		if value == nil {
			dst[key] = nil
			continue
		}
		v, err := copystructure.Copy(value)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInternal, err, "copy override %q", key)
		}
		dst[key] = v
	}
	return nil
}
