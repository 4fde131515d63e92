package domain

// TaskList is the ordered collection of tasks, newest first.
//
// A TaskList is treated as an immutable snapshot: every operation that
// changes the list returns a new TaskList and leaves the receiver untouched.
type TaskList []Task

// Len returns the number of tasks.
func (l TaskList) Len() int {
	return len(l)
}

// IsEmpty returns true if the list has no tasks.
func (l TaskList) IsEmpty() bool {
	return len(l) == 0
}

// Prepend returns a new list with t at the head.
func (l TaskList) Prepend(t Task) TaskList {
	out := make(TaskList, 0, len(l)+1)
	out = append(out, t)
	return append(out, l...)
}

// Toggle returns a new list with the completion flag of the task matching id
// flipped. If no task matches, the receiver is returned and found is false.
func (l TaskList) Toggle(id string) (TaskList, bool) {
	idx := l.IndexOf(id)
	if idx < 0 {
		return l, false
	}
	out := l.Clone()
	out[idx] = out[idx].Toggled()
	return out, true
}

// Remove returns a new list without the task matching id. If no task
// matches, the receiver is returned and found is false.
func (l TaskList) Remove(id string) (TaskList, bool) {
	idx := l.IndexOf(id)
	if idx < 0 {
		return l, false
	}
	out := make(TaskList, 0, len(l)-1)
	out = append(out, l[:idx]...)
	return append(out, l[idx+1:]...), true
}

// IndexOf returns the position of the task matching id, or -1.
func (l TaskList) IndexOf(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task matching id.
func (l TaskList) Find(id string) (Task, bool) {
	if idx := l.IndexOf(id); idx >= 0 {
		return l[idx], true
	}
	return Task{}, false
}

// IDs returns the task ids in list order.
func (l TaskList) IDs() []string {
	ids := make([]string, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

// Clone returns a deep copy of the list.
func (l TaskList) Clone() TaskList {
	if l == nil {
		return nil
	}
	out := make(TaskList, len(l))
	for i, t := range l {
		t.TimeRange = t.TimeRange.Clone()
		out[i] = t
	}
	return out
}
