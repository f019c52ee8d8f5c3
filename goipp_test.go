/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * End-to-end decode tests against captured wire messages
 */

package ipp

import (
	"bytes"
	"testing"
)

// goodMessage1 is a Print-Job request carrying a two-level nested
// media-col collection.
var goodMessage1 = []byte{
	0x01, 0x01, // IPP version
	0x00, 0x02, // Print-Job operation
	0x00, 0x00, 0x00, 0x01, // Request ID

	uint8(TagOperationGroup),

	uint8(TagCharset),
	0x00, 0x12,
	'a', 't', 't', 'r', 'i', 'b', 'u', 't', 'e', 's', '-',
	'c', 'h', 'a', 'r', 's', 'e', 't',
	0x00, 0x05,
	'u', 't', 'f', '-', '8',

	uint8(TagLanguage),
	0x00, 0x1b,
	'a', 't', 't', 'r', 'i', 'b', 'u', 't', 'e', 's', '-',
	'n', 'a', 't', 'u', 'r', 'a', 'l', '-', 'l', 'a', 'n',
	'g', 'u', 'a', 'g', 'e',
	0x00, 0x02,
	'e', 'n',

	uint8(TagURI),
	0x00, 0x0b,
	'p', 'r', 'i', 'n', 't', 'e', 'r', '-', 'u', 'r', 'i',
	0x00, 0x1c,
	'i', 'p', 'p', ':', '/', '/', 'l', 'o', 'c', 'a', 'l',
	'h', 'o', 's', 't', '/', 'p', 'r', 'i', 'n', 't', 'e',
	'r', 's', '/', 'f', 'o', 'o',

	uint8(TagJobGroup),

	uint8(TagBeginCollection),
	0x00, 0x09,
	'm', 'e', 'd', 'i', 'a', '-', 'c', 'o', 'l',
	0x00, 0x00,

	uint8(TagMemberName),
	0x00, 0x00,
	0x00, 0x0a,
	'm', 'e', 'd', 'i', 'a', '-', 's', 'i', 'z', 'e',

	uint8(TagBeginCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagMemberName),
	0x00, 0x00,
	0x00, 0x0b,
	'x', '-', 'd', 'i', 'm', 'e', 'n', 's', 'i', 'o', 'n',

	uint8(TagInteger),
	0x00, 0x00,
	0x00, 0x04,
	0x00, 0x00, 0x54, 0x56,

	uint8(TagMemberName),
	0x00, 0x00,
	0x00, 0x0b,
	'y', '-', 'd', 'i', 'm', 'e', 'n', 's', 'i', 'o', 'n',

	uint8(TagInteger),
	0x00, 0x00,
	0x00, 0x04,
	0x00, 0x00, 0x6d, 0x24,

	uint8(TagEndCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagMemberName),
	0x00, 0x00,
	0x00, 0x0b,
	'm', 'e', 'd', 'i', 'a', '-', 'c', 'o', 'l', 'o', 'r',

	uint8(TagKeyword),
	0x00, 0x00,
	0x00, 0x04,
	'b', 'l', 'u', 'e',

	uint8(TagEndCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagEnd),
}

// badMessage1 nests a second collection directly, without the required
// memberAttrName header preceding it.
var badMessage1 = []byte{
	0x01, 0x01,
	0x00, 0x02,
	0x00, 0x00, 0x00, 0x01,

	uint8(TagOperationGroup),

	uint8(TagCharset),
	0x00, 0x12,
	'a', 't', 't', 'r', 'i', 'b', 'u', 't', 'e', 's', '-',
	'c', 'h', 'a', 'r', 's', 'e', 't',
	0x00, 0x05,
	'u', 't', 'f', '-', '8',

	uint8(TagJobGroup),

	uint8(TagBeginCollection),
	0x00, 0x09,
	'm', 'e', 'd', 'i', 'a', '-', 'c', 'o', 'l',
	0x00, 0x00,

	uint8(TagBeginCollection), // missing memberAttrName wrapper
	0x00, 0x0a,
	'm', 'e', 'd', 'i', 'a', '-', 's', 'i', 'z', 'e',
	0x00, 0x00,

	uint8(TagEndCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagEndCollection),
	0x00, 0x00,
	0x00, 0x00,

	uint8(TagEnd),
}

func TestDecodeGoodMessage(t *testing.T) {
	var m Message
	if err := m.Decode(bytes.NewReader(goodMessage1)); err != nil {
		t.Fatalf("Decode: %s", err)
	}

	if len(m.Operation) != 3 {
		t.Fatalf("expected 3 operation attributes, got %d", len(m.Operation))
	}
	if len(m.Job) != 1 || m.Job[0].Name != "media-col" {
		t.Fatalf("expected a single media-col job attribute, got %+v", m.Job)
	}

	mediaCol := m.Job[0].Values[0].V.(Collection)
	if len(mediaCol) != 2 {
		t.Fatalf("expected 2 media-col members, got %d", len(mediaCol))
	}

	mediaSize := mediaCol[0].Values[0].V.(Collection)
	if len(mediaSize) != 2 {
		t.Fatalf("expected 2 media-size members, got %d", len(mediaSize))
	}
}

func TestDecodeBadMessage(t *testing.T) {
	var m Message
	err := m.Decode(bytes.NewReader(badMessage1))
	if err == nil {
		t.Fatal("expected a decode error for a malformed collection")
	}
	if _, ok := err.(*ProtocolError); !ok {
		t.Fatalf("expected *ProtocolError, got %T", err)
	}
}
