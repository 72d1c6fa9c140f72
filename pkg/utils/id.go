package utils

import "github.com/google/uuid"

// GenItemID returns a new inbox item id.
func GenItemID() string { return "itm_" + uuid.NewString() }

// GenTraceID returns a new memory trace id.
func GenTraceID() string { return "trc_" + uuid.NewString() }
