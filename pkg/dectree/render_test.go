package dectree

import (
	"strings"
	"testing"
)

// lines joins expected dump lines so that significant trailing whitespace
// stays visible in the test source.
func lines(ss ...string) string {
	return strings.Join(ss, "\n")
}

func TestOutcome_Render(t *testing.T) {
	t.Run("No Action", func(t *testing.T) {
		out := NewOutcome(Text("APPROVED"), nil)
		want := lines(
			"{",
			`  "type": "outcome",`,
			`  "value": "APPROVED",`,
			`  "hasAction": false`,
			"}",
		)
		if got := out.Render(0); got != want {
			t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("With Action And Indent", func(t *testing.T) {
		out := NewOutcome(Int(42), func(Context) {})
		want := lines(
			"  {",
			`    "type": "outcome",`,
			`    "value": "42",`,
			`    "hasAction": true`,
			"  }",
		)
		if got := out.Render(2); got != want {
			t.Errorf("Render(2) mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})
}

func TestDecision_Render(t *testing.T) {
	always := func(Context) bool { return true }

	t.Run("True Branch Only Omits False Branch", func(t *testing.T) {
		d := NewDecision("X", always, NewOutcome(Text("A"), nil), nil)
		want := lines(
			"{",
			`  "type": "decision",`,
			`  "name": "X",`,
			`  "trueBranch": `,
			"  {",
			`    "type": "outcome",`,
			`    "value": "A",`,
			`    "hasAction": false`,
			"  },",
			"}",
		)
		got := d.Render(0)
		if got != want {
			t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
		if strings.Contains(got, "falseBranch") {
			t.Error("Render() mentions falseBranch for a decision without one")
		}
	})

	t.Run("Both Branches", func(t *testing.T) {
		d := NewDecision("X", always,
			NewOutcome(Text("A"), nil),
			NewOutcome(Text("B"), nil))
		want := lines(
			"{",
			`  "type": "decision",`,
			`  "name": "X",`,
			`  "trueBranch": `,
			"  {",
			`    "type": "outcome",`,
			`    "value": "A",`,
			`    "hasAction": false`,
			"  },",
			`  "falseBranch": `,
			"  {",
			`    "type": "outcome",`,
			`    "value": "B",`,
			`    "hasAction": false`,
			"  }",
			"}",
		)
		if got := d.Render(0); got != want {
			t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("No Branches", func(t *testing.T) {
		d := NewDecision("X", always, nil, nil)
		want := lines(
			"{",
			`  "type": "decision",`,
			`  "name": "X",`,
			"}",
		)
		if got := d.Render(0); got != want {
			t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})
}

func TestMultiBranch_Render(t *testing.T) {
	never := func(Context) bool { return false }

	t.Run("Branch And Default", func(t *testing.T) {
		m := NewMultiBranch("Risk Level").
			AddBranch(never, NewOutcome(Text("LOW RISK"), nil)).
			SetDefault(NewOutcome(Text("CRITICAL RISK"), nil))
		want := lines(
			"{",
			`  "type": "multibranch",`,
			`  "name": "Risk Level",`,
			`  "branches": [`,
			"    {",
			`      "condition": "branch_0",`,
			`      "node": `,
			"      {",
			`        "type": "outcome",`,
			`        "value": "LOW RISK",`,
			`        "hasAction": false`,
			"      }",
			"    },",
			"    {",
			`      "condition": "default",`,
			`      "node": `,
			"      {",
			`        "type": "outcome",`,
			`        "value": "CRITICAL RISK",`,
			`        "hasAction": false`,
			"      }",
			"    }",
			"  ]",
			"}",
		)
		if got := m.Render(0); got != want {
			t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("Two Branches No Default", func(t *testing.T) {
		m := NewMultiBranch("m").
			AddBranch(never, NewOutcome(Text("A"), nil)).
			AddBranch(never, NewOutcome(Text("B"), nil))
		want := lines(
			"{",
			`  "type": "multibranch",`,
			`  "name": "m",`,
			`  "branches": [`,
			"    {",
			`      "condition": "branch_0",`,
			`      "node": `,
			"      {",
			`        "type": "outcome",`,
			`        "value": "A",`,
			`        "hasAction": false`,
			"      }",
			"    },",
			"    {",
			`      "condition": "branch_1",`,
			`      "node": `,
			"      {",
			`        "type": "outcome",`,
			`        "value": "B",`,
			`        "hasAction": false`,
			"      }",
			"    }",
			"  ]",
			"}",
		)
		if got := m.Render(0); got != want {
			t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		m := NewMultiBranch("m")
		want := lines(
			"{",
			`  "type": "multibranch",`,
			`  "name": "m",`,
			`  "branches": [`,
			"  ]",
			"}",
		)
		if got := m.Render(0); got != want {
			t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})
}
