package engine

import "testing"

func TestShouldLogRespectsLevel(t *testing.T) {
	orig := GetLogLevel()
	defer SetLogLevel(orig)

	SetLogLevel(LogLevelWarn)
	if shouldLog(LogLevelDebug) {
		t.Fatal("debug messages should be suppressed at warn level")
	}
	if shouldLog(LogLevelInfo) {
		t.Fatal("info messages should be suppressed at warn level")
	}
	if !shouldLog(LogLevelWarn) {
		t.Fatal("warn messages should pass at warn level")
	}
	if !shouldLog(LogLevelError) {
		t.Fatal("error messages should always pass at warn level or above")
	}
}

func TestShouldLogOffSuppressesEverything(t *testing.T) {
	orig := GetLogLevel()
	defer SetLogLevel(orig)

	SetLogLevel(LogLevelOff)
	if shouldLog(LogLevelError) {
		t.Fatal("LogLevelOff should suppress even error messages")
	}
}
