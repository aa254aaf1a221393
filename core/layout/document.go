package layout

// indexOf returns the position of the section with the given instance id,
// or -1 when absent.
func (d *Document) indexOf(sectionID string) int {
	for i := range d.Sections {
		if d.Sections[i].ID == sectionID {
			return i
		}
	}
	return -1
}

// FindSection returns a copy of the section with the given instance id.
func (d *Document) FindSection(sectionID string) (Section, bool) {
	if i := d.indexOf(sectionID); i >= 0 {
		return d.Sections[i], true
	}
	return Section{}, false
}

// AppendSection adds sec to the end of the layout.
func (d *Document) AppendSection(sec Section) {
	d.Sections = append(d.Sections, sec)
}

// RemoveSection deletes the section with the given instance id.
// Removing an unknown id is a no-op.
func (d *Document) RemoveSection(sectionID string) {
	if i := d.indexOf(sectionID); i >= 0 {
		d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
	}
}

// MoveSection moves the section with the given instance id to newPos,
// shifting the others accordingly. Out-of-bounds targets are clamped to the
// valid range; moving to the current position or an unknown id is a no-op.
func (d *Document) MoveSection(sectionID string, newPos int) {
	i := d.indexOf(sectionID)
	if i < 0 {
		return
	}
	if newPos < 0 {
		newPos = 0
	}
	if max := len(d.Sections) - 1; newPos > max {
		newPos = max
	}
	if newPos == i {
		return
	}

	sec := d.Sections[i]
	rest := append(d.Sections[:i], d.Sections[i+1:]...)
	d.Sections = append(rest[:newPos], append([]Section{sec}, rest[newPos:]...)...)
}

// UpdateProps shallow-merges partial into the section's existing props;
// keys not present in partial are preserved.
func (d *Document) UpdateProps(sectionID string, partial Props) {
	if i := d.indexOf(sectionID); i >= 0 {
		d.Sections[i].Props = d.Sections[i].Props.Merge(partial)
	}
}

// ToggleVisibility flips IsVisible on exactly the targeted section;
// order and props are untouched.
func (d *Document) ToggleVisibility(sectionID string) {
	if i := d.indexOf(sectionID); i >= 0 {
		d.Sections[i].IsVisible = !d.Sections[i].IsVisible
	}
}

// CloneSections returns a copy of the section list with cloned prop bags,
// safe to hand out without aliasing the document's own state.
func (d *Document) CloneSections() []Section {
	if d.Sections == nil {
		return nil
	}
	secs := make([]Section, len(d.Sections))
	copy(secs, d.Sections)
	for i := range secs {
		secs[i].Props = secs[i].Props.Clone()
	}
	return secs
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() Document {
	c := *d
	c.Sections = d.CloneSections()
	return c
}
