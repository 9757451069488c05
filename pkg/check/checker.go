package check

// Checker is implemented by all check types.
// Each check probes one aspect of bridge readiness
// and returns a Result indicating success or failure.
//
// Implementations:
//   - pingcheck.Check: host reachability (ICMP echo with TCP fallback)
//   - portcheck.Check: TCP port availability
//   - installcheck.Check: engine installation prerequisites
type Checker interface {
	Run() Result
}
