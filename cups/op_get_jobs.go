package cups

import (
	"context"

	"github.com/printkit/ipp"
)

// GetJobAttributes fetches the attributes of a single job via
// Get-Job-Attributes.
func (c *Client) GetJobAttributes(ctx context.Context, printerURI string, jobID int) (*PrintJobAttributes, error) {
	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpGetJobAttributes, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(printerURIAttr(printerURI))
	req.Operation.Add(ipp.MakeAttribute("job-id", ipp.TagInteger, ipp.Integer(jobID)))
	req.Operation.Add(requestingUserName(c.defaultUser))

	resp, err := c.transport.Exchange(ctx, c.url, req, nil, c.creds())
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	return projectJobAttributes(resp.Job), nil
}

// WhichJobs selects the subset of jobs Get-Jobs returns.
type WhichJobs string

const (
	JobsCompleted    WhichJobs = "completed"
	JobsNotCompleted WhichJobs = "not-completed"
	JobsAll          WhichJobs = "all"
)

// GetJobsOptions controls a Get-Jobs request.
type GetJobsOptions struct {
	Which  WhichJobs
	MyJobs bool
}

// GetJobs lists jobs on printerURI via Get-Jobs. MyJobs requires a
// requesting-user-name, since the server filters by it.
func (c *Client) GetJobs(ctx context.Context, printerURI string, opts GetJobsOptions) ([]PrintJobAttributes, error) {
	user := c.defaultUser
	if opts.MyJobs && user == "" {
		return nil, &InvalidArgumentError{Detail: "get-jobs: my-jobs requires a requesting user name"}
	}

	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpGetJobs, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(printerURIAttr(printerURI))
	req.Operation.Add(requestingUserName(user))

	which := opts.Which
	if which == "" {
		which = JobsNotCompleted
	}
	req.Operation.Add(ipp.MakeAttribute("which-jobs", ipp.TagKeyword, ipp.String(which)))
	req.Operation.Add(ipp.MakeAttribute("my-jobs", ipp.TagBoolean, ipp.Boolean(opts.MyJobs)))

	resp, err := c.transport.Exchange(ctx, c.url, req, nil, c.creds())
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	groups := resp.Groups.ByTag(ipp.TagJobGroup)
	jobs := make([]PrintJobAttributes, len(groups))
	for i, g := range groups {
		jobs[i] = *projectJobAttributes(g)
	}
	return jobs, nil
}
