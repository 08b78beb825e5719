// Package sample draws labels from weighted categorical distributions.
package sample

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/mroth/weightedrand"
)

// ErrInvalidDistribution is returned for empty, negative or all-zero weights.
var ErrInvalidDistribution = errors.New("invalid distribution")

// weightScale is the integer total a distribution is scaled to.
const weightScale = 1 << 24

// Distribution maps labels to relative weights. Weights need not sum to 1.
type Distribution map[string]float64

// Uniform returns a distribution giving every label weight 1.
func Uniform(labels ...string) Distribution {
	d := make(Distribution, len(labels))
	for _, l := range labels {
		d[l] = 1
	}
	return d
}

// Clone returns a copy of d that can be modified freely.
func (d Distribution) Clone() Distribution {
	c := make(Distribution, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

// Labels returns the labels of d in sorted order.
func (d Distribution) Labels() []string {
	labels := make([]string, 0, len(d))
	for k := range d {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Chooser draws repeatedly from one distribution.
type Chooser struct {
	c *weightedrand.Chooser
}

// NewChooser validates d and prepares it for drawing.
func NewChooser(d Distribution) (*Chooser, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: no labels", ErrInvalidDistribution)
	}

	var total float64
	for label, w := range d {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weight %v for %q", ErrInvalidDistribution, w, label)
		}
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrInvalidDistribution)
	}

	// sorted so a seeded source picks the same labels run to run
	labels := d.Labels()
	choices := make([]weightedrand.Choice, 0, len(labels))
	for _, label := range labels {
		w := d[label]
		scaled := uint(math.Round(w / total * weightScale))
		if w > 0 && scaled == 0 {
			scaled = 1
		}
		choices = append(choices, weightedrand.NewChoice(label, scaled))
	}

	c, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDistribution, err)
	}
	return &Chooser{c: c}, nil
}

// Draw returns one label using r as the random source.
func (c *Chooser) Draw(r *rand.Rand) string {
	return c.c.PickSource(r).(string)
}

// Draw returns one label of d with probability weight/sum(weights).
func Draw(r *rand.Rand, d Distribution) (string, error) {
	c, err := NewChooser(d)
	if err != nil {
		return "", err
	}
	return c.Draw(r), nil
}
