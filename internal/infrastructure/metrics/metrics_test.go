package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(NeverPayoffDetected)
	NeverPayoffDetected.Inc()
	after := testutil.ToFloat64(NeverPayoffDetected)

	if after != before+1 {
		t.Fatalf("counter = %f, want %f", after, before+1)
	}
}

func TestVecLabels(t *testing.T) {
	PlansComputed.WithLabelValues("avalanche").Inc()
	PlansComputed.WithLabelValues("snowball").Add(2)

	if got := testutil.ToFloat64(PlansComputed.WithLabelValues("snowball")); got < 2 {
		t.Fatalf("snowball counter = %f, want >= 2", got)
	}

	LLMRequests.WithLabelValues("success").Inc()
	if got := testutil.ToFloat64(LLMRequests.WithLabelValues("success")); got < 1 {
		t.Fatalf("llm counter = %f, want >= 1", got)
	}
}
