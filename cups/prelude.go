package cups

import "github.com/printkit/ipp"

// operationPrelude builds the operation-attributes group every request
// starts with: attributes-charset and attributes-natural-language, in
// that required order.
func operationPrelude() ipp.Attributes {
	return ipp.Attributes{
		ipp.MakeAttribute("attributes-charset", ipp.TagCharset, ipp.String("utf-8")),
		ipp.MakeAttribute("attributes-natural-language", ipp.TagLanguage, ipp.String("en")),
	}
}

func requestingUserName(user string) ipp.Attribute {
	return ipp.MakeAttribute("requesting-user-name", ipp.TagName, ipp.String(user))
}

func printerURIAttr(uri string) ipp.Attribute {
	return ipp.MakeAttribute("printer-uri", ipp.TagURI, ipp.String(uri))
}

func jobURIAttr(uri string) ipp.Attribute {
	return ipp.MakeAttribute("job-uri", ipp.TagURI, ipp.String(uri))
}
