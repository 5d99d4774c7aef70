package version

import "testing"

func setVersion(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	t.Cleanup(func() {
		Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
	})
	Version, Commit, BuildTime = version, commit, buildTime
}

func TestString(t *testing.T) {
	setVersion(t, "1.2.3", "abc1234", "2024-01-15T10:00:00Z")

	expected := "1.2.3 (abc1234) built 2024-01-15T10:00:00Z"
	if got := String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}

func TestUserAgent(t *testing.T) {
	t.Run("release build", func(t *testing.T) {
		setVersion(t, "1.2.3", "abc1234", "2024-01-15T10:00:00Z")
		if got := UserAgent(); got != "moex-quotes/1.2.3 (+abc1234)" {
			t.Errorf("UserAgent() = %q", got)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		setVersion(t, "dev", "unknown", "unknown")
		if got := UserAgent(); got != "moex-quotes/dev (+unknown)" {
			t.Errorf("UserAgent() = %q", got)
		}
	})
}

func TestDefaultValues(t *testing.T) {
	// These might be overwritten by ldflags in production builds
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Commit == "" {
		t.Error("Commit should not be empty")
	}
	if BuildTime == "" {
		t.Error("BuildTime should not be empty")
	}
}
