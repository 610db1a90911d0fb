package build

import "github.com/oklog/ulid/v2"

// Set via -ldflags at release time.
var (
	ServiceName = "safecall"
	Version     = "dev"
)

// GlobalInstanceId distinguishes processes that share a service name.
var GlobalInstanceId = ulid.Make().String()
