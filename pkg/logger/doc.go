// Package logger provides per-category, level-filtered logging that adapts its output to
// where the process runs.
//
// # Overview
//
// A Logger is bound to a category and to a Settings object holding the configuration
// shared by all Loggers: level threshold, output format and whether timestamps and level
// labels are printed. Settings reads the environment on first use. Inside AWS Lambda
// (AWS_LAMBDA_FUNCTION_NAME is set) it defaults to INFO and single-line JSON records;
// elsewhere it defaults to DEBUG and human-oriented output with timestamps and labels.
//
// Quick start
//
//	log := logger.New("orders")
//	log.Info("order accepted", orderID, 3)
//	log.WarnObject("Response to API Gateway:", resp)
//
// # Formats
//
// FormatFlat hands the sink one token each for the timestamp, the level label, the
// "category:" prefix, the message and every extra argument, so non-string arguments keep
// the sink's own formatting. Object variants append indented JSON to the prefix.
//
// FormatStruct hands the sink one JSON string with timestamp, level, category, message,
// and the Lambda region, function name, version, stage and invocation ids when known.
// Extra arguments are not rendered; object variants append compact JSON to the message.
//
// # Configuration
//
// Initialize changes any subset of the process-wide configuration and the Set* functions
// change single fields. Changes are visible to existing Loggers on their next call. Only
// the level can be overridden per Logger, through Options or SetLevel.
//
// Logging never fails and never panics on caller input: values that cannot be encoded as
// JSON fall back to their fmt representation, and unrecognized environment overrides are
// ignored.
package logger
