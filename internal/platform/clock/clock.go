// Package clock provides a wall-clock seam so services can be tested at a fixed date
package clock

import "time"

// Now is the clock seam; services take one instead of calling time.Now directly
type Now func() time.Time

// System returns the real wall clock
func System() Now { return time.Now }

// Fixed returns a clock pinned to t
func Fixed(t time.Time) Now { return func() time.Time { return t } }
