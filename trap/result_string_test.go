package trap

import "testing"

func TestFastResultString(t *testing.T) {
	cases := map[FastResult]string{
		FastResultFastCall: "FastCall",
		FastResultCall:     "Call",
		FastResultRestore:  "Restore",
		FastResultSwitch:   "Switch",
		FastResultContinue: "Continue",
		FastResult(99):     "FastResult(99)",
	}

	for result, want := range cases {
		if got := result.String(); got != want {
			t.Errorf("String(%d): want: %s, got: %s", result, want, got)
		}
	}
}

func TestRestorePrefixString(t *testing.T) {
	cases := map[RestorePrefix]string{
		RestoreFastCall:    "RestoreFastCall",
		RestoreCall:        "RestoreCall",
		RestoreCallerSaved: "RestoreCallerSaved",
		RestoreFull:        "RestoreFull",
	}

	for prefix, want := range cases {
		if got := prefix.String(); got != want {
			t.Errorf("String(%d): want: %s, got: %s", prefix, want, got)
		}
	}
}

func TestEntireResultString(t *testing.T) {
	cases := map[EntireResult]string{
		EntireResultFastCall: "FastCall",
		EntireResultCall:     "Call",
		EntireResultRestore:  "Restore",
	}

	for result, want := range cases {
		if got := result.String(); got != want {
			t.Errorf("String(%d): want: %s, got: %s", result, want, got)
		}
	}
}
