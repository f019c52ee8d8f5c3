package cups

import (
	"context"

	"github.com/printkit/ipp"
)

func (c *Client) jobControl(ctx context.Context, op ipp.Op, printerURI string, jobID int) error {
	req := ipp.NewRequest(ipp.DefaultVersion, op, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(printerURIAttr(printerURI))
	req.Operation.Add(ipp.MakeAttribute("job-id", ipp.TagInteger, ipp.Integer(jobID)))
	req.Operation.Add(requestingUserName(c.defaultUser))

	resp, err := c.transport.Exchange(ctx, c.url, req, nil, c.creds())
	if err != nil {
		return classifyTransportErr(err)
	}
	return classifyStatus(resp)
}

// CancelJob cancels a pending or processing job. A job already in a
// terminal state is reported back as an IPPStatusError
// (client-error-not-possible); it is not retried.
func (c *Client) CancelJob(ctx context.Context, printerURI string, jobID int) error {
	return c.jobControl(ctx, ipp.OpCancelJob, printerURI, jobID)
}

// HoldJob holds a job, preventing it from printing until released.
func (c *Client) HoldJob(ctx context.Context, printerURI string, jobID int) error {
	return c.jobControl(ctx, ipp.OpHoldJob, printerURI, jobID)
}

// ReleaseJob releases a previously held job.
func (c *Client) ReleaseJob(ctx context.Context, printerURI string, jobID int) error {
	return c.jobControl(ctx, ipp.OpReleaseJob, printerURI, jobID)
}
