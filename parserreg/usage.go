package parserreg

// Usage restricts which programs should accept a given provider.
type Usage uint8

const (
	// UsageCLI indicates the provider should be available in CLI programs.
	UsageCLI Usage = 1 << iota
	// UsageDaemon indicates the provider should be available in long-running
	// daemons (e.g. the gRPC host).
	UsageDaemon
)

func (u Usage) allows(want Usage) bool { return u&want != 0 }
