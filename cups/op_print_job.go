package cups

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/printkit/ipp"
)

// resolutionPattern matches a "600dpi" or "600x600dpi" resolution
// string; a bare number applies to both axes.
var resolutionPattern = regexp.MustCompile(`^(\d+)(?:x(\d+))?(dpi|dpcm)$`)

// PrintJob submits document as a new job on the printer at printerURI,
// per the field mapping: Copies becomes the copies integer (minimum
// 1), PageRanges the page-ranges rangeOfInteger[] (via
// ParsePageRanges), Duplex/Portrait the sides and orientation-requested
// attributes, Color the output-mode keyword, PageFormat the media
// keyword, and Resolution the printer-resolution value. The document
// is streamed immediately after the end-of-attributes tag.
func (c *Client) PrintJob(ctx context.Context, printerURI string, job PrintJob) (*PrintJobAttributes, error) {
	if job.Document == nil {
		return nil, &InvalidArgumentError{Detail: "print job: document is required"}
	}

	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpPrintJob, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(printerURIAttr(printerURI))

	user := job.UserName
	if user == "" {
		user = c.defaultUser
	}
	req.Operation.Add(requestingUserName(user))

	if job.JobName != "" {
		req.Operation.Add(ipp.MakeAttribute("job-name", ipp.TagName, ipp.String(job.JobName)))
	}

	for name, value := range job.OperationAttributes {
		req.Operation.Add(ipp.MakeAttribute(name, ipp.TagKeyword, ipp.String(value)))
	}

	jobAttrs, err := buildJobAttributes(job)
	if err != nil {
		return nil, err
	}
	req.Job = jobAttrs

	resp, err := c.transport.Exchange(ctx, c.url, req, job.Document, c.creds())
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	return projectJobAttributes(resp.Job), nil
}

func buildJobAttributes(job PrintJob) (ipp.Attributes, error) {
	var attrs ipp.Attributes

	copies := job.Copies
	if copies < 1 {
		copies = 1
	}
	attrs.Add(ipp.MakeAttribute("copies", ipp.TagInteger, ipp.Integer(copies)))

	if job.PageRanges != "" {
		ranges, err := ParsePageRanges(job.PageRanges)
		if err != nil {
			return nil, err
		}
		if len(ranges) > 0 {
			values := make([]ipp.Value, len(ranges))
			for i, r := range ranges {
				values[i] = r
			}
			attrs.Add(ipp.MakeAttr("page-ranges", ipp.TagRange, values[0], values[1:]...))
		}
	}

	sides := "one-sided"
	if job.Duplex {
		if job.Portrait {
			sides = "two-sided-long-edge"
		} else {
			sides = "two-sided-short-edge"
		}
	}
	attrs.Add(ipp.MakeAttribute("sides", ipp.TagKeyword, ipp.String(sides)))

	orientation := 3 // portrait
	if !job.Portrait {
		orientation = 4 // landscape
	}
	attrs.Add(ipp.MakeAttribute("orientation-requested", ipp.TagEnum, ipp.Integer(orientation)))

	outputMode := "monochrome"
	if job.Color {
		outputMode = "color"
	}
	attrs.Add(ipp.MakeAttribute("output-mode", ipp.TagKeyword, ipp.String(outputMode)))

	if job.PageFormat != "" {
		attrs.Add(ipp.MakeAttribute("media", ipp.TagKeyword, ipp.String(job.PageFormat)))
	}

	if job.Resolution != "" {
		res, err := parseResolution(job.Resolution)
		if err != nil {
			return nil, err
		}
		attrs.Add(ipp.MakeAttribute("printer-resolution", ipp.TagResolution, res))
	}

	if job.JobPriority > 0 {
		attrs.Add(ipp.MakeAttribute("job-priority", ipp.TagInteger, ipp.Integer(job.JobPriority)))
	}

	if job.JobHoldUntil != "" {
		attrs.Add(ipp.MakeAttribute("job-hold-until", ipp.TagKeyword, ipp.String(job.JobHoldUntil)))
	}

	if job.JobAttributesString != "" {
		extra, err := ParseJobAttributes(job.JobAttributesString)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, extra...)
	}

	return attrs, nil
}

// parseResolution parses "600dpi" or "600x600dpi" into a Resolution
// value; a bare number applies to both axes.
func parseResolution(s string) (ipp.Resolution, error) {
	m := resolutionPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ipp.Resolution{}, &InvalidArgumentError{Detail: "resolution: " + s}
	}

	x, err := strconv.Atoi(m[1])
	if err != nil {
		return ipp.Resolution{}, &InvalidArgumentError{Detail: "resolution: " + s}
	}
	y := x
	if m[2] != "" {
		y, err = strconv.Atoi(m[2])
		if err != nil {
			return ipp.Resolution{}, &InvalidArgumentError{Detail: "resolution: " + s}
		}
	}

	units := ipp.UnitsDpi
	if m[3] == "dpcm" {
		units = ipp.UnitsDpcm
	}

	return ipp.Resolution{Xres: x, Yres: y, Units: units}, nil
}

func projectJobAttributes(attrs ipp.Attributes) *PrintJobAttributes {
	out := &PrintJobAttributes{Attributes: make(map[string][]ipp.Value)}

	for _, attr := range attrs {
		values := make([]ipp.Value, len(attr.Values))
		for i, v := range attr.Values {
			values[i] = v.V
		}
		out.Attributes[attr.Name] = values

		if len(attr.Values) == 0 {
			continue
		}
		first := attr.Values[0].V

		switch attr.Name {
		case "job-id":
			if n, ok := first.(ipp.Integer); ok {
				out.JobID = int(n)
			}
		case "job-uri":
			out.JobURI = first.String()
		case "job-printer-uri":
			out.PrinterURI = first.String()
		case "job-originating-user-name":
			out.UserName = first.String()
		case "job-name":
			out.JobName = first.String()
		case "job-state":
			if n, ok := first.(ipp.Integer); ok {
				out.State = JobState(n)
			}
		case "job-state-reasons":
			for _, v := range attr.Values {
				out.JobStateReasons = append(out.JobStateReasons, v.V.String())
			}
		}
	}

	return out
}
