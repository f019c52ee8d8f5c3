/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP message decoder
 */

package ipp

import (
	"io"
)

// DecoderOptions controls Decode/DecodeEx behavior
type DecoderOptions struct {
	// MaxCollectionDepth caps how deeply collection values may nest.
	// Zero means "use the default" (16).
	MaxCollectionDepth int
}

func (opt DecoderOptions) withDefaults() DecoderOptions {
	if opt.MaxCollectionDepth <= 0 {
		opt.MaxCollectionDepth = 16
	}
	return opt
}

// messageDecoder decodes a Message from its wire format
type messageDecoder struct {
	in  io.Reader
	opt DecoderOptions
	off int
}

var validGroupTags = map[Tag]bool{
	TagOperationGroup:         true,
	TagJobGroup:               true,
	TagPrinterGroup:           true,
	TagUnsupportedGroup:       true,
	TagSubscriptionGroup:      true,
	TagEventNotificationGroup: true,
}

// namedAttrs returns the Message field that merges every group sharing
// tag, or nil if tag is not one of the known group tags.
func namedAttrs(m *Message, tag Tag) *Attributes {
	for _, g := range groupOrder {
		if g.tag == tag {
			return g.attrs(m)
		}
	}
	return nil
}

func (md *messageDecoder) decode(m *Message) error {
	ver, err := md.readU16()
	if err != nil {
		return err
	}
	m.Version = Version(ver)

	code, err := md.readU16()
	if err != nil {
		return err
	}
	m.Code = Code(code)

	reqID, err := md.readU32()
	if err != nil {
		return err
	}
	m.RequestID = reqID

	var curGroup *Group
	var curNamed *Attributes

	for {
		tag, err := md.readTag()
		if err != nil {
			return err
		}

		if tag == TagEnd {
			break
		}

		if tag.IsDelimiter() {
			if !validGroupTags[tag] {
				return newProtocolError(ErrBadTag, md.off-1, "unexpected delimiter tag 0x%2.2x", int(tag))
			}

			m.Groups.Add(Group{Tag: tag})
			curGroup = &m.Groups[len(m.Groups)-1]
			curNamed = namedAttrs(m, tag)
			continue
		}

		if curGroup == nil {
			return newProtocolError(ErrBadOrder, md.off-1, "attribute value outside any group")
		}

		attr, err := md.readAttr(tag, 0)
		if err != nil {
			return err
		}

		if attr.Name == "" {
			if len(curGroup.Attrs) == 0 {
				return newProtocolError(ErrBadOrder, md.off, "additional value with no preceding attribute")
			}
			last := &curGroup.Attrs[len(curGroup.Attrs)-1]
			last.Values = append(last.Values, attr.Values...)
			if curNamed != nil && len(*curNamed) > 0 {
				lastNamed := &(*curNamed)[len(*curNamed)-1]
				lastNamed.Values = append(lastNamed.Values, attr.Values...)
			}
			continue
		}

		curGroup.Attrs = append(curGroup.Attrs, attr)
		if curNamed != nil {
			*curNamed = append(*curNamed, attr)
		}
	}

	return nil
}

// readAttr reads one attribute entry (name, tagged value), expanding a
// begCollection value into its nested members.
func (md *messageDecoder) readAttr(tag Tag, depth int) (Attribute, error) {
	name, err := md.readString()
	if err != nil {
		return Attribute{}, err
	}

	raw, err := md.readBlob()
	if err != nil {
		return Attribute{}, err
	}

	val, err := decodeValue(tag, raw)
	if err != nil {
		return Attribute{}, &ProtocolError{Kind: ErrBadLength, Detail: err.Error(), Offset: md.off}
	}

	if tag == TagBeginCollection {
		if depth >= md.opt.MaxCollectionDepth {
			return Attribute{}, newProtocolError(ErrBadOrder, md.off, "collection nesting exceeds %d levels", md.opt.MaxCollectionDepth)
		}

		collection, err := md.readCollection(depth + 1)
		if err != nil {
			return Attribute{}, err
		}
		val = collection
	}

	attr := Attribute{Name: name}
	attr.AddValue(tag, val)
	return attr, nil
}

// readCollection reads memberAttrName/value pairs until endCollection
func (md *messageDecoder) readCollection(depth int) (Collection, error) {
	var collection Collection

	for {
		tag, err := md.readTag()
		if err != nil {
			return nil, err
		}

		if tag == TagEndCollection {
			if _, err := md.readString(); err != nil {
				return nil, err
			}
			if _, err := md.readBlob(); err != nil {
				return nil, err
			}
			return collection, nil
		}

		if tag != TagMemberName {
			return nil, newProtocolError(ErrBadOrder, md.off-1, "expected memberAttrName, got %s", tag)
		}

		if _, err := md.readString(); err != nil {
			return nil, err
		}
		nameRaw, err := md.readBlob()
		if err != nil {
			return nil, err
		}

		memberTag, err := md.readTag()
		if err != nil {
			return nil, err
		}
		if memberTag.IsDelimiter() {
			return nil, newProtocolError(ErrBadOrder, md.off-1, "delimiter tag inside collection")
		}

		member, err := md.readAttr(memberTag, depth)
		if err != nil {
			return nil, err
		}
		member.Name = string(nameRaw)

		collection.Add(member)
	}
}

func (md *messageDecoder) readTag() (Tag, error) {
	b, err := md.readByte()
	if err != nil {
		return TagZero, err
	}
	return Tag(b), nil
}

func (md *messageDecoder) readString() (string, error) {
	data, err := md.readBlob()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// readBlob reads a u16 length followed by that many bytes: the
// name-length/name and value-length/value wire idiom shared by every
// attribute field.
func (md *messageDecoder) readBlob() ([]byte, error) {
	n, err := md.readU16()
	if err != nil {
		return nil, err
	}
	return md.readBytes(int(n))
}

func (md *messageDecoder) readByte() (byte, error) {
	buf, err := md.readBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (md *messageDecoder) readU16() (uint16, error) {
	buf, err := md.readBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

func (md *messageDecoder) readU32() (uint32, error) {
	buf, err := md.readBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

func (md *messageDecoder) readBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(md.in, buf); err != nil {
		return nil, newProtocolError(ErrTruncated, md.off, "need %d bytes: %s", n, err)
	}
	md.off += n
	return buf, nil
}
