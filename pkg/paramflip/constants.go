package paramflip

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Toggle completed (including "no change made")
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitAdminAPI     = 11 // RDS management API call failed
)

// Invocation status codes returned to the trigger.
const (
	StatusOK    = 200
	StatusError = 500
)

const (
	// DefaultParameterGroup is the DB parameter group toggled when none is configured.
	DefaultParameterGroup = "my-database-pg"

	// DefaultParameterName is the parameter toggled when none is configured.
	DefaultParameterName = "slow_query_log"

	// DefaultTimeout bounds a single invocation, including pagination.
	DefaultTimeout = 30 * time.Second

	// DefaultProbePort is the PostgreSQL port used by the live probe.
	DefaultProbePort = 5432

	// ValueOff and ValueOn are the two values a toggle moves between.
	ValueOff = "0"
	ValueOn  = "1"

	// ValueNotSet is reported for a parameter whose value is absent.
	ValueNotSet = "Not set"

	// ApplyMethodImmediate makes a modification take effect without a reboot.
	ApplyMethodImmediate = "immediate"
)
