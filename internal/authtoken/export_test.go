package authtoken

import "time"

// SetNow overrides the clock used for issuing and verifying.
func (i *Issuer) SetNow(now func() time.Time) { i.now = now }
