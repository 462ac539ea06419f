package helpers

import "expvar"

// Process-wide counters, served by the debug module at /api/debug/vars.
var (
	MetricRegistrations  = expvar.NewInt("accounts_registered")
	MetricChildren       = expvar.NewInt("children_created")
	MetricCodeCollisions = expvar.NewInt("access_code_collisions")
	MetricLoginsOK       = expvar.NewInt("logins_succeeded")
	MetricLoginsFailed   = expvar.NewInt("logins_failed")
	MetricLogouts        = expvar.NewInt("logouts")
)
