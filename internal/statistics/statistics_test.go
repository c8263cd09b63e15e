package statistics

import (
	"math"
	"testing"
)

func TestDistribution_Empty(t *testing.T) {
	d := NewDistribution(0)

	if d.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty distribution, got %f", d.Mean())
	}
	if d.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty distribution, got %f", d.StdDev())
	}
	if d.Median() != 0 || d.Min() != 0 || d.Max() != 0 || d.Quartile(1) != 0 {
		t.Error("Expected order statistics of 0 for empty distribution")
	}
}

func TestDistribution_FewSamplesHaveNoSpread(t *testing.T) {
	d := NewDistribution(2)
	d.Add(0.1)
	d.Add(0.9)

	if d.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 with two samples, got %f", d.StdDev())
	}
	if math.Abs(d.Mean()-0.5) > 1e-9 {
		t.Errorf("Expected mean of 0.5, got %f", d.Mean())
	}
}

func TestDistribution_MultipleValues(t *testing.T) {
	d := NewDistribution(8)
	for _, v := range []float64{0.7, 0.1, 0.5, 0.3, 0.8, 0.2, 0.6, 0.4} {
		d.Add(v)
	}

	if d.Len() != 8 {
		t.Fatalf("Expected 8 samples, got %d", d.Len())
	}
	if math.Abs(d.Mean()-0.45) > 1e-9 {
		t.Errorf("Expected mean of 0.45, got %f", d.Mean())
	}

	// population variance of 0.1..0.8 is 0.0525
	if math.Abs(d.Variance()-0.0525) > 1e-9 {
		t.Errorf("Expected variance of 0.0525, got %f", d.Variance())
	}
	if d.Min() != 0.1 || d.Max() != 0.8 {
		t.Errorf("Expected min 0.1 and max 0.8, got %f and %f", d.Min(), d.Max())
	}
	if d.Median() != 0.5 {
		t.Errorf("Expected upper median 0.5, got %f", d.Median())
	}
	if d.Quartile(1) != 0.3 {
		t.Errorf("Expected first quartile 0.3, got %f", d.Quartile(1))
	}
	if d.Quartile(3) != 0.7 {
		t.Errorf("Expected third quartile 0.7, got %f", d.Quartile(3))
	}
}

func TestDistribution_QuartileIndexRoundsDown(t *testing.T) {
	d := NewDistribution(6)
	for i := range 6 {
		d.Add(float64(i))
	}
	// n/4 = 1, so the third quartile reads index 3, not int(0.75*6) = 4.
	if d.Quartile(3) != 3 {
		t.Errorf("Expected third quartile 3, got %f", d.Quartile(3))
	}
	if d.Median() != 3 {
		t.Errorf("Expected median 3, got %f", d.Median())
	}
}

func TestDistribution_AddAfterRead(t *testing.T) {
	d := NewDistribution(4)
	d.Add(3)
	d.Add(1)
	d.Add(2)
	if d.Max() != 3 {
		t.Fatalf("Expected max 3, got %f", d.Max())
	}
	d.Add(10)
	if d.Max() != 10 {
		t.Errorf("Expected max 10 after adding, got %f", d.Max())
	}
	if math.Abs(d.Mean()-4) > 1e-9 {
		t.Errorf("Expected mean 4, got %f", d.Mean())
	}
}
