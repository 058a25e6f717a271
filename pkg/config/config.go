package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	WaitForServices   string // duration to wait for other services to be ready
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogFilter         string // zapfilter rules, e.g. "debug:stream info:*"
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry, "stdout" prints to console
	TelemetryInterval string // export interval for metrics
	ProfilingPort     int    // port for profiling
)

// Config holds the configuration values of the listen and record commands
type Config struct {
	Addr              string   // UDP listen address
	PollInterval      string   // sleep between polls when no datagram is pending
	ReadBuffer        int      // socket receive buffer, 0 keeps the OS default
	JSONL             string   // jsonl output file, "-" for stdout
	Select            string   // JSONPath projection for jsonl output
	Types             []string // packet types written to jsonl, empty for all
	NatsURL           string   // NATS server, empty disables publishing
	NatsSubjectPrefix string   // first token of the published subjects
	Record            string   // pcap file receiving the raw datagrams
	BoardInterval     string   // log the lap board in this interval, empty disables
	PrintMessage      bool     // if true and log level is debug, decoded packets are logged
}
