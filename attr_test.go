/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Attribute tests
 */

package ipp

import "testing"

func TestMakeAttribute(t *testing.T) {
	a := MakeAttribute("copies", TagInteger, Integer(3))
	if a.Name != "copies" {
		t.Fatalf("Name = %q", a.Name)
	}
	if len(a.Values) != 1 || a.Values[0].T != TagInteger {
		t.Fatalf("Values = %v", a.Values)
	}
}

func TestMakeAttrMultiValued(t *testing.T) {
	a := MakeAttr("requested-attributes", TagKeyword,
		String("copies"), String("sides"), String("media"))

	if len(a.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(a.Values))
	}
	for _, v := range a.Values {
		if v.T != TagKeyword {
			t.Errorf("expected TagKeyword, got %s", v.T)
		}
	}
}

func TestAttributesEqual(t *testing.T) {
	a1 := Attributes{MakeAttribute("copies", TagInteger, Integer(1))}
	a2 := Attributes{MakeAttribute("copies", TagInteger, Integer(1))}
	a3 := Attributes{MakeAttribute("copies", TagInteger, Integer(2))}

	if !a1.Equal(a2) {
		t.Error("identical attribute slices should be equal")
	}
	if a1.Equal(a3) {
		t.Error("differing attribute slices should not be equal")
	}
}

func TestAttributeUnpackOutOfBand(t *testing.T) {
	var a Attribute
	a.Name = "media-ready"
	if err := a.unpack(TagUnknown, nil); err != nil {
		t.Fatalf("unpack: %s", err)
	}
	if len(a.Values) != 1 || a.Values[0].T != TagUnknown {
		t.Fatalf("Values = %v", a.Values)
	}
	if _, ok := a.Values[0].V.(Void); !ok {
		t.Fatalf("expected Void value, got %T", a.Values[0].V)
	}
}

func TestAttributeUnpackBadLength(t *testing.T) {
	var a Attribute
	a.Name = "copies"
	if err := a.unpack(TagInteger, []byte{1, 2}); err == nil {
		t.Fatal("expected an error unpacking a truncated integer")
	}
}

func TestDecodeValueUnknownTagFallsBackToBinary(t *testing.T) {
	v, err := decodeValue(Tag(0x50), []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("decodeValue: %s", err)
	}
	if _, ok := v.(Binary); !ok {
		t.Fatalf("expected Binary, got %T", v)
	}
}
