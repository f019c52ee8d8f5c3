package cups

import (
	"context"

	"github.com/printkit/ipp"
)

// GetPrinter fetches the attributes of the printer at printerURI via
// Get-Printer-Attributes.
func (c *Client) GetPrinter(ctx context.Context, printerURI string) (*Printer, error) {
	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpGetPrinterAttributes, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(printerURIAttr(printerURI))
	req.Operation.Add(requestingUserName(c.defaultUser))

	resp, err := c.transport.Exchange(ctx, c.url, req, nil, c.creds())
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	groups := resp.Groups.ByTag(ipp.TagPrinterGroup)
	if len(groups) == 0 {
		return nil, &IPPStatusError{Status: ipp.Status(resp.Code), Message: "no printer-attributes group in response"}
	}

	p := projectPrinter(groups[0])
	return &p, nil
}

// GetPrinters lists every printer and class known to the server, via
// CUPS-Get-Printers. One printer-attributes group is returned per
// entry.
func (c *Client) GetPrinters(ctx context.Context) ([]Printer, error) {
	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpCupsGetPrinters, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(requestingUserName(c.defaultUser))

	resp, err := c.transport.Exchange(ctx, c.url, req, nil, c.creds())
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	groups := resp.Groups.ByTag(ipp.TagPrinterGroup)
	printers := make([]Printer, len(groups))
	for i, g := range groups {
		printers[i] = projectPrinter(g)
	}
	return printers, nil
}

// GetDefaultPrinter fetches the server's default printer via
// CUPS-Get-Default.
func (c *Client) GetDefaultPrinter(ctx context.Context) (*Printer, error) {
	req := ipp.NewRequest(ipp.DefaultVersion, ipp.OpCupsGetDefault, c.requestID.next())
	req.Operation = operationPrelude()
	req.Operation.Add(requestingUserName(c.defaultUser))

	resp, err := c.transport.Exchange(ctx, c.url, req, nil, c.creds())
	if err != nil {
		return nil, classifyTransportErr(err)
	}
	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	groups := resp.Groups.ByTag(ipp.TagPrinterGroup)
	if len(groups) != 1 {
		return nil, &IPPStatusError{Status: ipp.Status(resp.Code), Message: "expected exactly one printer-attributes group"}
	}

	p := projectPrinter(groups[0])
	p.IsDefault = true
	return &p, nil
}

// GetPrintersWithoutDefault lists every printer and class except
// implicit-class entries that duplicate a concrete printer of the same
// name; implicit classes exist purely to let CUPS load-balance across
// a set of identically named printers, and are rarely useful to
// surface alongside their members.
func (c *Client) GetPrintersWithoutDefault(ctx context.Context) ([]Printer, error) {
	printers, err := c.GetPrinters(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, p := range printers {
		if p.PrinterType&cupsImplicitClass == 0 {
			seen[p.Name] = true
		}
	}

	out := make([]Printer, 0, len(printers))
	for _, p := range printers {
		if p.PrinterType&cupsImplicitClass != 0 && seen[p.Name] {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FindPrinter is a convenience filter over GetPrinters that returns the
// first entry whose name or URI matches identifier, or nil if none
// does. It performs a full enumeration on every call; callers that
// already have the printer's URI should prefer GetPrinter instead.
func (c *Client) FindPrinter(ctx context.Context, identifier string) (*Printer, error) {
	printers, err := c.GetPrinters(ctx)
	if err != nil {
		return nil, err
	}

	for i := range printers {
		if printers[i].Name == identifier || printers[i].URI == identifier {
			return &printers[i], nil
		}
	}
	return nil, nil
}

func projectPrinter(attrs ipp.Attributes) Printer {
	p := Printer{Attributes: make(map[string][]ipp.Value)}

	for _, attr := range attrs {
		values := make([]ipp.Value, len(attr.Values))
		for i, v := range attr.Values {
			values[i] = v.V
		}
		p.Attributes[attr.Name] = values

		if len(attr.Values) == 0 {
			continue
		}
		first := attr.Values[0].V

		switch attr.Name {
		case "printer-uri-supported":
			p.URI = first.String()
		case "printer-name":
			p.Name = first.String()
		case "printer-info":
			p.Description = first.String()
		case "printer-location":
			p.Location = first.String()
		case "printer-state":
			if n, ok := first.(ipp.Integer); ok {
				p.State = PrinterState(n)
			}
		case "printer-state-reasons":
			for _, v := range values {
				p.StateReasons = append(p.StateReasons, v.String())
			}
		case "printer-type":
			if n, ok := first.(ipp.Integer); ok {
				p.PrinterType = uint32(n)
			}
		case "media-supported":
			for _, v := range values {
				p.MediaSupported = append(p.MediaSupported, v.String())
			}
		case "printer-resolution-supported":
			for _, v := range values {
				p.ResolutionSupported = append(p.ResolutionSupported, v.String())
			}
		case "document-format-supported":
			for _, v := range values {
				p.MimeTypesSupported = append(p.MimeTypesSupported, v.String())
			}
		}
	}

	return p
}
