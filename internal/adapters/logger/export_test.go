// export_test.go exports private functions for white-box testing.
package logger

// FormatError renders an error the way Logger.Error does in text mode.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
