package dectree

import "testing"

func TestExprCondition(t *testing.T) {
	t.Run("Compile Error", func(t *testing.T) {
		if _, err := ExprCondition("&&&"); err == nil {
			t.Fatal("ExprCondition() expected error for garbage input, got nil")
		}
	})

	t.Run("Comparison", func(t *testing.T) {
		cond, err := ExprCondition(`amount > 100`)
		if err != nil {
			t.Fatalf("ExprCondition() unexpected error: %v", err)
		}

		if !cond(Context{"amount": 200}) {
			t.Error("cond(amount=200) = false, want true")
		}
		if cond(Context{"amount": 50}) {
			t.Error("cond(amount=50) = true, want false")
		}
	})

	t.Run("Membership", func(t *testing.T) {
		cond, err := ExprCondition(`country in ["US", "CA"]`)
		if err != nil {
			t.Fatalf("ExprCondition() unexpected error: %v", err)
		}

		if !cond(Context{"country": "CA"}) {
			t.Error("cond(country=CA) = false, want true")
		}
		if cond(Context{"country": "BR"}) {
			t.Error("cond(country=BR) = true, want false")
		}
	})

	t.Run("Missing Attribute Degrades To False", func(t *testing.T) {
		cond, err := ExprCondition(`amount > 100`)
		if err != nil {
			t.Fatalf("ExprCondition() unexpected error: %v", err)
		}

		if cond(Context{}) {
			t.Error("cond(empty ctx) = true, want false")
		}
	})

	t.Run("Non Boolean Result Degrades To False", func(t *testing.T) {
		cond, err := ExprCondition(`amount + 1`)
		if err != nil {
			// also fine: the compiler may reject it outright
			return
		}

		if cond(Context{"amount": 1}) {
			t.Error("cond(amount+1) = true, want false")
		}
	})
}

func TestMustExprCondition(t *testing.T) {
	t.Run("Panics On Bad Expression", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustExprCondition() did not panic on garbage input")
			}
		}()
		MustExprCondition("&&&")
	})

	t.Run("Compiles Good Expression", func(t *testing.T) {
		cond := MustExprCondition(`active == true`)
		if !cond(Context{"active": true}) {
			t.Error("cond(active=true) = false, want true")
		}
	})
}
