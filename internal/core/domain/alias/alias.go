/*
Package alias defines the core domain entities for managed aliases.
*/
package alias

/*
Entry is one alias record: a unique name, the command it expands to, a free-text
description and the tags used for search. Entries are plain values; nothing is
validated on construction.
*/
type Entry struct {
	Name        string   `json:"name" yaml:"name"`
	Command     string   `json:"command" yaml:"command"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// HasTag reports whether one of the entry's tags is exactly tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// clone returns a copy of e that shares no backing array with it.
func (e Entry) clone() Entry {
	if e.Tags != nil {
		e.Tags = append(make([]string, 0, len(e.Tags)), e.Tags...)
	}
	return e
}
