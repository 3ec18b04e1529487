package assert

import "testing"

func recoverFailure(t *testing.T, fn func()) *Failure {
	t.Helper()
	var failure *Failure
	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			f, ok := rec.(*Failure)
			if !ok {
				t.Fatalf("expected *Failure panic, got %T", rec)
			}
			failure = f
		}()
		fn()
	}()
	return failure
}

func TestTrue(t *testing.T) {
	t.Run("holds silently", func(t *testing.T) {
		if f := recoverFailure(t, func() { True(2+2 == 4, "2 + 2 == 4") }); f != nil {
			t.Errorf("unexpected failure: %v", f)
		}
	})

	t.Run("violation panics with description", func(t *testing.T) {
		f := recoverFailure(t, func() { True(15%4 == 0, "15 %% 4 == 0") })
		if f == nil {
			t.Fatal("expected a failure")
		}
		if f.Message != "15 % 4 == 0" {
			t.Errorf("unexpected message: %q", f.Message)
		}
	})
}

func TestEqual(t *testing.T) {
	t.Run("equal values pass", func(t *testing.T) {
		if f := recoverFailure(t, func() { Equal(3*3, 9, "3 * 3") }); f != nil {
			t.Errorf("unexpected failure: %v", f)
		}
	})

	t.Run("unequal values fail with both sides", func(t *testing.T) {
		f := recoverFailure(t, func() { Equal(15%4, 0, "15 % 4") })
		if f == nil {
			t.Fatal("expected a failure")
		}
		if f.Message != "15 % 4: got 3, want 0" {
			t.Errorf("unexpected message: %q", f.Message)
		}
	})
}
