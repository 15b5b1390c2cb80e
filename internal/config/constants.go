package config

// Built-in generic names
const (
	PrintGenericName   = "print"
	SummaryGenericName = "summary"
	LengthGenericName  = "length"
	PlotGenericName    = "plot"
)

// GenericSummaryText is what the summary default reports for a value
// it has no specific knowledge of.
const GenericSummaryText = "generic summary"

// EnvLogLevel is the environment variable controlling CLI log level.
const EnvLogLevel = "MARMOT_LOG_LEVEL"
