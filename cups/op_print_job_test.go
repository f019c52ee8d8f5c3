package cups

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/printkit/ipp"
)

func jobAttrsGroup(id int, state JobState) ipp.Group {
	return ipp.Group{
		Tag: ipp.TagJobGroup,
		Attrs: ipp.Attributes{
			ipp.MakeAttribute("job-id", ipp.TagInteger, ipp.Integer(id)),
			ipp.MakeAttribute("job-uri", ipp.TagURI, ipp.String("ipp://host/jobs/1")),
			ipp.MakeAttribute("job-state", ipp.TagEnum, ipp.Integer(state)),
		},
	}
}

func TestPrintJob(t *testing.T) {
	const doc = "%PDF-fake-document"

	c, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		if ipp.Op(req.Code) != ipp.OpPrintJob {
			t.Fatalf("op = %s", ipp.Op(req.Code))
		}

		rest, _ := io.ReadAll(r.Body)
		if string(rest) != doc {
			t.Fatalf("document body = %q, want %q", rest, doc)
		}

		var sides, mode string
		for _, attr := range req.Job {
			switch attr.Name {
			case "sides":
				sides = attr.Values[0].V.String()
			case "output-mode":
				mode = attr.Values[0].V.String()
			}
		}
		if sides != "two-sided-long-edge" {
			t.Errorf("sides = %q", sides)
		}
		if mode != "color" {
			t.Errorf("output-mode = %q", mode)
		}

		writeIPPResponse(w, req.RequestID, ipp.StatusOk, ipp.Groups{jobAttrsGroup(42, JobPending)})
	})
	defer closeFn()

	job := PrintJob{
		Document: strings.NewReader(doc),
		Duplex:   true,
		Portrait: true,
		Color:    true,
	}
	attrs, err := c.PrintJob(context.Background(), "ipp://host/printers/lp1", job)
	if err != nil {
		t.Fatalf("PrintJob: %s", err)
	}
	if attrs.JobID != 42 || attrs.State != JobPending {
		t.Fatalf("attrs = %+v", attrs)
	}
}

func TestPrintJobRequiresDocument(t *testing.T) {
	c := New("http://example.invalid/")
	_, err := c.PrintJob(context.Background(), "ipp://host/printers/lp1", PrintJob{})
	if _, ok := err.(*InvalidArgumentError); !ok {
		t.Fatalf("err = %v, want *InvalidArgumentError", err)
	}
}

func TestPrintJobPageRangesAndResolution(t *testing.T) {
	c, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		io.Copy(io.Discard, r.Body)

		var gotRanges []ipp.Range
		var res ipp.Resolution
		for _, attr := range req.Job {
			switch attr.Name {
			case "page-ranges":
				for _, v := range attr.Values {
					gotRanges = append(gotRanges, v.V.(ipp.Range))
				}
			case "printer-resolution":
				res = attr.Values[0].V.(ipp.Resolution)
			}
		}
		if len(gotRanges) != 2 || gotRanges[0] != (ipp.Range{Lower: 1, Upper: 3}) {
			t.Fatalf("page-ranges = %v", gotRanges)
		}
		if res.Xres != 600 || res.Yres != 600 {
			t.Fatalf("resolution = %+v", res)
		}

		writeIPPResponse(w, req.RequestID, ipp.StatusOk, ipp.Groups{jobAttrsGroup(1, JobPending)})
	})
	defer closeFn()

	job := PrintJob{
		Document:   strings.NewReader("doc"),
		PageRanges: "1-3,7",
		Resolution: "600dpi",
	}
	if _, err := c.PrintJob(context.Background(), "ipp://host/printers/lp1", job); err != nil {
		t.Fatalf("PrintJob: %s", err)
	}
}
