package port

// Chunker segments raw document text into bounded retrievable units.
// Implementations are pure: same input, same output, no hidden state.
type Chunker interface {
	Split(text string) []string
}
