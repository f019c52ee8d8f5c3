package cups

import (
	"context"
	"net/http"
	"testing"

	"github.com/printkit/ipp"
)

func TestGetJobAttributes(t *testing.T) {
	c, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		if ipp.Op(req.Code) != ipp.OpGetJobAttributes {
			t.Fatalf("op = %s", ipp.Op(req.Code))
		}
		writeIPPResponse(w, req.RequestID, ipp.StatusOk, ipp.Groups{jobAttrsGroup(7, JobProcessing)})
	})
	defer closeFn()

	attrs, err := c.GetJobAttributes(context.Background(), "ipp://host/printers/lp1", 7)
	if err != nil {
		t.Fatalf("GetJobAttributes: %s", err)
	}
	if attrs.JobID != 7 || attrs.State != JobProcessing {
		t.Fatalf("attrs = %+v", attrs)
	}
}

func TestGetJobsDefaultsToNotCompleted(t *testing.T) {
	c, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		var which string
		for _, attr := range req.Operation {
			if attr.Name == "which-jobs" {
				which = attr.Values[0].V.String()
			}
		}
		if which != "not-completed" {
			t.Fatalf("which-jobs = %q", which)
		}
		writeIPPResponse(w, req.RequestID, ipp.StatusOk, ipp.Groups{jobAttrsGroup(1, JobPending), jobAttrsGroup(2, JobProcessing)})
	})
	defer closeFn()

	jobs, err := c.GetJobs(context.Background(), "ipp://host/printers/lp1", GetJobsOptions{})
	if err != nil {
		t.Fatalf("GetJobs: %s", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs", len(jobs))
	}
}

func TestGetJobsMyJobsRequiresUser(t *testing.T) {
	c := New("http://example.invalid/", WithDefaultUser(""))
	_, err := c.GetJobs(context.Background(), "ipp://host/printers/lp1", GetJobsOptions{MyJobs: true})
	if _, ok := err.(*InvalidArgumentError); !ok {
		t.Fatalf("err = %v, want *InvalidArgumentError", err)
	}
}
