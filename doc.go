/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Package documentation
*/

/*
Package ipp implements the IPP core protocol, as defined by RFC 8010
and RFC 8011.

It does not implement high-level operations such as "print a document"
or "cancel a print job" — see github.com/printkit/ipp/cups for that.
Its scope is limited to proper generation and parsing of IPP requests
and responses.

	IPP uses a simple request/response model:
	1. Send a request
	2. Receive a response

Request and response share a wire format, represented here by
Message, with the only difference that Code holds the operation code
in a request and the status code in a response.

Example:

	package main

	import (
		"bytes"
		"net/http"
		"os"

		"github.com/printkit/ipp"
	)

	const uri = "http://192.168.1.102:631"

	func makeRequest() ([]byte, error) {
		m := ipp.NewRequest(ipp.DefaultVersion, ipp.OpGetPrinterAttributes, 1)
		m.Operation.Add(ipp.MakeAttribute("attributes-charset",
			ipp.TagCharset, ipp.String("utf-8")))
		m.Operation.Add(ipp.MakeAttribute("attributes-natural-language",
			ipp.TagLanguage, ipp.String("en-US")))
		m.Operation.Add(ipp.MakeAttribute("printer-uri",
			ipp.TagURI, ipp.String(uri)))
		m.Operation.Add(ipp.MakeAttribute("requested-attributes",
			ipp.TagKeyword, ipp.String("all")))

		return m.EncodeBytes()
	}

	func check(err error) {
		if err != nil {
			panic(err)
		}
	}

	func main() {
		request, err := makeRequest()
		check(err)

		resp, err := http.Post(uri, ipp.ContentType, bytes.NewBuffer(request))
		check(err)
		defer resp.Body.Close()

		var respMsg ipp.Message
		check(respMsg.Decode(resp.Body))

		respMsg.Print(os.Stdout, false)
	}
*/
package ipp
