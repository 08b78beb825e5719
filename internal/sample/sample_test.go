package sample

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestDrawInvalid(t *testing.T) {
	tests := []struct {
		name string
		d    Distribution
	}{
		{"nil", nil},
		{"empty", Distribution{}},
		{"all zero", Distribution{"a": 0, "b": 0}},
		{"negative", Distribution{"a": 1, "b": -1}},
		{"nan", Distribution{"a": math.NaN()}},
		{"inf", Distribution{"a": math.Inf(1)}},
	}

	r := rand.New(rand.NewSource(1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Draw(r, tt.d)
			if !errors.Is(err, ErrInvalidDistribution) {
				t.Errorf("Draw(%v) err = %v, want ErrInvalidDistribution", tt.d, err)
			}
		})
	}
}

func TestDrawCertainOutcome(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 200 {
		got, err := Draw(r, Distribution{"outcome1": 1, "outcome2": 0})
		if err != nil {
			t.Fatal(err)
		}
		if got != "outcome1" {
			t.Fatalf("zero-weight label drawn: %q", got)
		}
	}
}

func TestDrawRelativeWeights(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c, err := NewChooser(Distribution{"a": 1, "b": 3, "c": 6})
	if err != nil {
		t.Fatal(err)
	}

	const n = 20000
	counts := map[string]int{}
	for range n {
		counts[c.Draw(r)]++
	}

	want := map[string]float64{"a": 0.1, "b": 0.3, "c": 0.6}
	for label, p := range want {
		got := float64(counts[label]) / n
		if math.Abs(got-p) > 0.02 {
			t.Errorf("frequency of %q = %.3f, want ~%.2f", label, got, p)
		}
	}
}

func TestDrawTinyWeightStillPossible(t *testing.T) {
	c, err := NewChooser(Distribution{"big": 1e12, "tiny": 1e-9})
	if err != nil {
		t.Fatal(err)
	}
	if c == nil {
		t.Fatal("nil chooser")
	}
}

func TestDrawDeterministic(t *testing.T) {
	d := Distribution{"x": 1, "y": 1, "z": 1}

	draw := func() []string {
		r := rand.New(rand.NewSource(7))
		var out []string
		for range 50 {
			s, err := Draw(r, d)
			if err != nil {
				t.Fatal(err)
			}
			out = append(out, s)
		}
		return out
	}

	a, b := draw(), draw()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs with the same seed: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestUniform(t *testing.T) {
	d := Uniform("Ms", "Mrs", "Miss")
	if len(d) != 3 {
		t.Fatalf("len = %d, want 3", len(d))
	}
	for k, v := range d {
		if v != 1 {
			t.Errorf("weight of %q = %v, want 1", k, v)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := Distribution{"a": 1}
	c := d.Clone()
	c["a"] = 5
	c["b"] = 2
	if d["a"] != 1 || len(d) != 1 {
		t.Errorf("clone mutated original: %v", d)
	}
}

func TestLabelsSorted(t *testing.T) {
	got := Distribution{"gems": 1, "acse": 1, "edsml": 1}.Labels()
	want := []string{"acse", "edsml", "gems"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Labels() = %v, want %v", got, want)
		}
	}
}
