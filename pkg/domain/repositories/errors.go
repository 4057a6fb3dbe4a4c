package repositories

import "errors"

// ErrDatasetUnavailable indicates the bundle dataset is missing entirely.
// Queries cannot degrade past this; callers surface it to the user.
var ErrDatasetUnavailable = errors.New("bundle dataset unavailable")
