package attendance

import "errors"

var ErrAlreadyCheckedIn = errors.New("already checked in for this date")
