package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
// Codes carry a module prefix (COMMON, GRAPH, RANK, DATA) so that log
// pipelines and metrics can aggregate by subsystem without parsing messages.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeValidation     ErrorCode = "COMMON_004"
	ErrCodeNotImplemented ErrorCode = "COMMON_005"
)

// Graph and centrality error codes.
const (
	// ErrCodeGraphEdgeParse marks an edge-list line that could not be split
	// into exactly two identifiers.
	ErrCodeGraphEdgeParse ErrorCode = "GRAPH_001"

	// ErrCodeGraphEmpty marks a centrality computation attempted on a graph
	// with no nodes.
	ErrCodeGraphEmpty ErrorCode = "GRAPH_002"

	// ErrCodeGraphConvergence marks an iterative method that reached its
	// iteration cap before meeting tolerance.  Non-fatal: the scores returned
	// alongside it are the best available approximation.
	ErrCodeGraphConvergence ErrorCode = "GRAPH_003"

	// ErrCodeGraphFinalized marks a mutation attempted on a finalized graph.
	ErrCodeGraphFinalized ErrorCode = "GRAPH_004"
)

// Ranking error codes.
const (
	ErrCodeRankUnknownMeasure ErrorCode = "RANK_001"
)

// Dataset error codes.
const (
	ErrCodeDataSourceUnavailable ErrorCode = "DATA_001"
	ErrCodeDataParseFailed       ErrorCode = "DATA_002"
)

// Aliases matching the generic factory names.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:       "internal error",
	ErrCodeBadRequest:     "bad request",
	ErrCodeNotFound:       "resource not found",
	ErrCodeValidation:     "validation failed",
	ErrCodeNotImplemented: "not implemented",

	ErrCodeGraphEdgeParse:   "malformed citation edge line",
	ErrCodeGraphEmpty:       "citation graph has no nodes",
	ErrCodeGraphConvergence: "iterative method hit iteration cap before converging",
	ErrCodeGraphFinalized:   "citation graph is finalized and immutable",

	ErrCodeRankUnknownMeasure: "unknown centrality measure",

	ErrCodeDataSourceUnavailable: "dataset source unavailable",
	ErrCodeDataParseFailed:       "failed to parse dataset row",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
