package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeReportError      Code = "REPORT_ERROR"
)

func (c Code) String() string {
	return string(c)
}
