package estimate

import (
	"sync"
	"testing"
	"time"
)

func TestEstimator_SentinelAndShortHandle(t *testing.T) {
	r := New().Estimate(SentinelIdentifier, "a", testNow)
	if r.Confidence != LabelMedium || r.Accuracy != Accuracy6Months || r.Method != MethodUsername {
		t.Fatalf("unexpected %+v", r)
	}
	if !r.EstimatedDate.Equal(day0("2016-01-01")) {
		t.Fatalf("date=%s", r.EstimatedDate)
	}
	if r.DateRange.Start != "July 1, 2015" || r.DateRange.End != "July 1, 2016" {
		t.Fatalf("range=%+v", r.DateRange)
	}
}

func TestEstimator_NothingUsable(t *testing.T) {
	r := New().Estimate("", "this_name_is_too_long", testNow)
	if r.Confidence != LabelVeryLow || r.Method != MethodDefault || !r.EstimatedDate.Equal(testNow) {
		t.Fatalf("unexpected %+v", r)
	}
}

func TestEstimator_IdentifierAndUsername(t *testing.T) {
	e := New()
	r := e.Estimate("1500000", "john", testNow)
	if r.Confidence != LabelHigh || r.Method != MethodIdentifier || r.Accuracy != Accuracy3Months {
		t.Fatalf("unexpected %+v", r)
	}
	if len(r.AllEstimates) != 2 {
		t.Fatalf("estimates=%d", len(r.AllEstimates))
	}
	idDate := e.IdentifierEstimate("1500000").Date
	nameDate := e.UsernameEstimate("john").Date
	if !r.EstimatedDate.After(idDate) || !r.EstimatedDate.Before(nameDate) {
		t.Fatalf("fused %s outside (%s, %s)", r.EstimatedDate, idDate, nameDate)
	}
}

func TestEstimator_OutOfRangeIdentifierDropsOut(t *testing.T) {
	e := New()
	if e.IdentifierEstimate("9007199254740991") != nil {
		t.Fatalf("ceiling id should not estimate")
	}
	r := e.Estimate("9007199254740991", "john", testNow)
	if r.Confidence != LabelMedium || !r.EstimatedDate.Equal(day0("2015-06-01")) {
		t.Fatalf("unexpected %+v", r)
	}
}

func TestEstimator_Options(t *testing.T) {
	tab, err := NewAnchorTable([]AnchorPoint{
		{ID: 1, Date: day0("2020-01-01")},
		{ID: 11, Date: day0("2020-01-11")},
	}, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	e := New(WithAnchors(tab), WithClassifier(NewClassifier(nil)), WithAnchors(nil))
	if e.Anchors() != tab {
		t.Fatalf("nil option should not reset anchors")
	}
	r := e.Estimate("6", "john", testNow)
	if !r.EstimatedDate.Equal(day0("2020-01-06")) || len(r.AllEstimates) != 1 {
		t.Fatalf("unexpected %+v", r)
	}
}

func TestDefault_Shared(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Estimator, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Default()
		}(i)
	}
	wg.Wait()
	for _, e := range got[1:] {
		if e != got[0] {
			t.Fatalf("Default returned distinct instances")
		}
	}
}
