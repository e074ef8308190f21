package runtime

// Selection remembers the files the user chose in the latest add cycle.
// It is used for display only and never consulted as repository state.
type Selection struct {
	files []string
}

// Set replaces the remembered files
func (s *Selection) Set(files []string) {
	s.files = append([]string(nil), files...)
}

// Reset forgets the remembered files
func (s *Selection) Reset() {
	s.files = nil
}

// Files returns a copy of the remembered files
func (s *Selection) Files() []string {
	return append([]string(nil), s.files...)
}

// IsEmpty reports whether no files are remembered
func (s *Selection) IsEmpty() bool {
	return len(s.files) == 0
}
