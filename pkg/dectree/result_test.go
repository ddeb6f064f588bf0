package dectree

import "testing"

func TestResult_String(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{"Text", Text("APPROVED"), "APPROVED"},
		{"Empty Text", Text(""), ""},
		{"Int", Int(42), "42"},
		{"Negative Int", Int(-7), "-7"},
		{"Real", Real(0.25), "0.25"},
		{"Whole Real", Real(3.0), "3"},
		{"Bool True", Bool(true), "true"},
		{"Bool False", Bool(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_Kind(t *testing.T) {
	tests := []struct {
		res  Result
		want Kind
	}{
		{Text("x"), KindText},
		{Int(1), KindInt},
		{Real(1.5), KindReal},
		{Bool(true), KindBool},
	}

	for _, tt := range tests {
		if got := tt.res.Kind(); got != tt.want {
			t.Errorf("Kind() of %v = %v, want %v", tt.res, got, tt.want)
		}
	}
}

func TestSentinels(t *testing.T) {
	if got := NoResult.String(); got != "NO_RESULT" {
		t.Errorf("NoResult = %q, want NO_RESULT", got)
	}
	if got := NoMatch.String(); got != "NO_MATCH" {
		t.Errorf("NoMatch = %q, want NO_MATCH", got)
	}
	if got := NoRoot.String(); got != "NO_ROOT" {
		t.Errorf("NoRoot = %q, want NO_ROOT", got)
	}
}
