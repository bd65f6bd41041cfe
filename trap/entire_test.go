package trap

import "testing"

func TestFastMailGetTwicePanics(t *testing.T) {
	ec := EntireContext[int]{mail: new(int)}
	*ec.mail = 9

	_, mail := ec.Split()

	if got := mail.Get(); got != 9 {
		t.Errorf("get: want: 9, got: %d", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("second Get: want: panic, got: none")
		}
	}()

	mail.Get()
}

func TestFastMailDerefDoesNotConsume(t *testing.T) {
	ec := EntireContext[string]{mail: new(string)}
	*ec.mail = "payload"

	_, mail := ec.Split()

	if got := *mail.Deref(); got != "payload" {
		t.Errorf("deref: want: payload, got: %s", got)
	}

	if got := mail.Get(); got != "payload" {
		t.Errorf("get: want: payload, got: %s", got)
	}
}
