/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP message encoder
 */

package ipp

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// messageEncoder encodes a Message to its wire format
type messageEncoder struct {
	out io.Writer
}

// encode writes the header, every attribute group in order, and the
// end-of-attributes tag
func (me *messageEncoder) encode(m *Message) error {
	if err := me.encodeU8(uint8(m.Version >> 8)); err != nil {
		return err
	}
	if err := me.encodeU8(uint8(m.Version)); err != nil {
		return err
	}
	if err := me.encodeU16(uint16(m.Code)); err != nil {
		return err
	}
	if err := me.encodeU32(m.RequestID); err != nil {
		return err
	}

	for _, grp := range m.encodeGroups() {
		if err := me.encodeTag(grp.Tag); err != nil {
			return err
		}
		for _, attr := range grp.Attrs {
			if attr.Name == "" {
				return errors.New("ipp: attribute without a name")
			}
			if err := me.encodeAttr(attr); err != nil {
				return err
			}
		}
	}

	return me.encodeTag(TagEnd)
}

// encodeAttr emits one attribute: its first value with the full name,
// every additional value with an empty name, as required for
// multi-valued attributes.
func (me *messageEncoder) encodeAttr(attr Attribute) error {
	if len(attr.Values) == 0 {
		return fmt.Errorf("ipp: attribute %q has no value", attr.Name)
	}

	name := attr.Name
	for _, val := range attr.Values {
		if err := me.encodeTag(val.T); err != nil {
			return err
		}
		if err := me.encodeName(name); err != nil {
			return err
		}
		if err := me.encodeValue(val.T, val.V); err != nil {
			return err
		}
		name = ""
	}

	return nil
}

func (me *messageEncoder) encodeU8(v uint8) error {
	return me.write([]byte{v})
}

func (me *messageEncoder) encodeU16(v uint16) error {
	return me.write([]byte{byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeU32(v uint32) error {
	return me.write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func (me *messageEncoder) encodeTag(tag Tag) error {
	return me.encodeU8(uint8(tag))
}

func (me *messageEncoder) encodeName(name string) error {
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("ipp: attribute name exceeds %d bytes", math.MaxUint16)
	}
	if err := me.encodeU16(uint16(len(name))); err != nil {
		return err
	}
	return me.write([]byte(name))
}

// encodeValue validates the value's type against the tag, encodes it,
// and for a begCollection value recursively encodes its members.
func (me *messageEncoder) encodeValue(tag Tag, v Value) error {
	tagType := tag.Type()
	switch tagType {
	case TypeInvalid:
		return fmt.Errorf("ipp: tag %s cannot carry a value", tag)
	case TypeVoid:
		v = Void{}
	default:
		if collection, ok := v.(Collection); ok && tagType == TypeCollection {
			_ = collection // validated type below via v.Type()
		}
		if tagType != v.Type() {
			return fmt.Errorf("ipp: tag %s requires %s value, got %s", tag, tagType, v.Type())
		}
	}

	data, err := v.encode()
	if err != nil {
		return err
	}
	if len(data) > math.MaxUint16 {
		return fmt.Errorf("ipp: attribute value exceeds %d bytes", math.MaxUint16)
	}

	if err := me.encodeU16(uint16(len(data))); err != nil {
		return err
	}
	if err := me.write(data); err != nil {
		return err
	}

	if collection, ok := v.(Collection); ok {
		return me.encodeCollection(collection)
	}

	return nil
}

// encodeCollection emits each member as a memberAttrName/value pair,
// then the endCollection marker
func (me *messageEncoder) encodeCollection(collection Collection) error {
	for _, attr := range collection {
		if attr.Name == "" {
			return errors.New("ipp: collection member without a name")
		}

		nameAttr := MakeAttribute("", TagMemberName, String(attr.Name))
		if err := me.encodeAttr(nameAttr); err != nil {
			return err
		}
		if err := me.encodeAttr(Attribute{Name: "", Values: attr.Values}); err != nil {
			return err
		}
	}

	return me.encodeAttr(MakeAttribute("", TagEndCollection, Void{}))
}

func (me *messageEncoder) write(data []byte) error {
	for len(data) > 0 {
		n, err := me.out.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
