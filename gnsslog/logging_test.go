package gnsslog

import "testing"

func TestLevelFromEnvDefaultsToInfo(t *testing.T) {
	t.Setenv("GNSSDRV_LOG_LEVEL", "")
	if got := levelFromEnv(); got.String() != "INFO" {
		t.Fatalf("levelFromEnv() = %v, want INFO", got)
	}
}

func TestLevelFromEnvHonorsOverride(t *testing.T) {
	t.Setenv("GNSSDRV_LOG_LEVEL", "DEBUG")
	if got := levelFromEnv(); got.String() != "DEBUG" {
		t.Fatalf("levelFromEnv() = %v, want DEBUG", got)
	}
}

func TestNewReturnsLoggerForModule(t *testing.T) {
	log := New("testmod")
	if log == nil {
		t.Fatalf("New returned nil logger")
	}
	log.Info("hello from testmod")
}
