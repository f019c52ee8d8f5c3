package cups

import (
	"context"

	"github.com/printkit/ipp"
)

// MoveJob moves the job at jobURI to targetPrinterURI, via
// CUPS-Move-Job.
func (c *Client) MoveJob(ctx context.Context, jobURI, targetPrinterURI string) error {
	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpCupsMoveJob, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(jobURIAttr(jobURI))
	req.Operation.Add(requestingUserName(c.defaultUser))
	req.Job = ipp.Attributes{
		ipp.MakeAttribute("job-printer-uri", ipp.TagURI, ipp.String(targetPrinterURI)),
	}

	resp, err := c.transport.Exchange(ctx, c.url, req, nil, c.creds())
	if err != nil {
		return classifyTransportErr(err)
	}
	return classifyStatus(resp)
}
