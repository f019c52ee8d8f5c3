/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Groups of attributes
 */

package ipp

import "sort"

// Group represents a single attribute group: a delimiter tag and the
// attributes that follow it, up to the next delimiter.
type Group struct {
	Tag   Tag        // Group tag
	Attrs Attributes // Group attributes, in wire order
}

// Groups represents an ordered sequence of groups. A message may carry
// several groups with the same tag (CUPS-Get-Printers returns one
// printer-attributes group per printer); Groups is what preserves that
// separation, since Message's named fields merge same-tag groups
// together.
type Groups []Group

// Add appends an Attribute to the Group
func (g *Group) Add(attr Attribute) {
	g.Attrs.Add(attr)
}

// Equal checks that groups g and g2 are equal, including order
func (g Group) Equal(g2 Group) bool {
	return g.Tag == g2.Tag && g.Attrs.Equal(g2.Attrs)
}

// Add appends a Group to Groups
func (groups *Groups) Add(g Group) {
	*groups = append(*groups, g)
}

// Equal checks that groups and groups2 are equal, in order
func (groups Groups) Equal(groups2 Groups) bool {
	if len(groups) != len(groups2) {
		return false
	}
	for i, g := range groups {
		if !g.Equal(groups2[i]) {
			return false
		}
	}
	return true
}

// Filter returns the attributes of every group with the given tag,
// concatenated in wire order.
func (groups Groups) Filter(tag Tag) Attributes {
	var out Attributes
	for _, g := range groups {
		if g.Tag == tag {
			out = append(out, g.Attrs...)
		}
	}
	return out
}

// ByTag returns the attributes of each group with the given tag, one
// entry per group (not merged), in wire order. Useful for projecting one domain entity per group, e.g. one Printer
// per printer-attributes group in a CUPS-Get-Printers response.
func (groups Groups) ByTag(tag Tag) []Attributes {
	var out []Attributes
	for _, g := range groups {
		if g.Tag == tag {
			out = append(out, g.Attrs)
		}
	}
	return out
}

func (groups Groups) clone() Groups {
	out := make(Groups, len(groups))
	copy(out, groups)
	return out
}

// sortedByTag returns a stable copy of groups ordered by tag: groups
// with different tags are reordered, groups sharing a tag keep their
// relative order.
func (groups Groups) sortedByTag() Groups {
	out := groups.clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
