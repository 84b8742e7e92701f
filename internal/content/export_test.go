package content

import "time"

// SetNow overrides the clock used for date windows.
func SetNow(s Service, now func() time.Time) { s.(*service).now = now }
