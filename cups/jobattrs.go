package cups

import (
	"strconv"
	"strings"

	"github.com/printkit/ipp"
)

// syntaxTags maps the syntax tokens accepted in a job-attributes
// string to their wire tag. An unrecognized token maps to keyword,
// matching the most common job-template attribute syntax.
var syntaxTags = map[string]ipp.Tag{
	"integer":  ipp.TagInteger,
	"boolean":  ipp.TagBoolean,
	"enum":     ipp.TagEnum,
	"keyword":  ipp.TagKeyword,
	"name":     ipp.TagName,
	"text":     ipp.TagText,
	"uri":      ipp.TagURI,
	"charset":  ipp.TagCharset,
	"language": ipp.TagLanguage,
	"mimetype": ipp.TagMimeType,
}

// ParseJobAttributes parses a string of the form
// "name:syntax:value#name:syntax:value" into individually typed
// attributes, to be merged into a job-attributes group
func ParseJobAttributes(s string) (ipp.Attributes, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var attrs ipp.Attributes
	for _, entry := range strings.Split(s, "#") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		fields := strings.SplitN(entry, ":", 3)
		if len(fields) != 3 {
			return nil, &InvalidArgumentError{Detail: "job attribute: " + entry}
		}
		name, syntax, raw := fields[0], strings.ToLower(fields[1]), fields[2]

		tag, ok := syntaxTags[syntax]
		if !ok {
			tag = ipp.TagKeyword
		}

		value, err := parseJobAttrValue(tag, raw)
		if err != nil {
			return nil, &InvalidArgumentError{Detail: "job attribute: " + entry}
		}

		attrs.Add(ipp.MakeAttribute(name, tag, value))
	}

	return attrs, nil
}

func parseJobAttrValue(tag ipp.Tag, raw string) (ipp.Value, error) {
	switch tag {
	case ipp.TagInteger, ipp.TagEnum:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		return ipp.Integer(n), nil
	case ipp.TagBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		return ipp.Boolean(b), nil
	default:
		return ipp.String(raw), nil
	}
}
