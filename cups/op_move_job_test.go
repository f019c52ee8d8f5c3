package cups

import (
	"context"
	"net/http"
	"testing"

	"github.com/printkit/ipp"
)

func TestMoveJob(t *testing.T) {
	c, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		if ipp.Op(req.Code) != ipp.OpCupsMoveJob {
			t.Fatalf("op = %s", ipp.Op(req.Code))
		}

		var gotTarget string
		for _, attr := range req.Job {
			if attr.Name == "job-printer-uri" {
				gotTarget = attr.Values[0].V.String()
			}
		}
		if gotTarget != "ipp://host/printers/lp2" {
			t.Fatalf("job-printer-uri = %q", gotTarget)
		}

		writeIPPResponse(w, req.RequestID, ipp.StatusOk, nil)
	})
	defer closeFn()

	err := c.MoveJob(context.Background(), "ipp://host/jobs/5", "ipp://host/printers/lp2")
	if err != nil {
		t.Fatalf("MoveJob: %s", err)
	}
}
