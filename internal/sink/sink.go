// Package sink provides the host side effects used by export: places to
// save generated documents and ways to open links.
package sink

// Saver stores a generated document under a file name.
type Saver interface {
	Save(data []byte, filename string) error
}

// Opener opens a URL outside this process.
type Opener interface {
	Open(url string) error
}

// Sink pairs a Saver with an Opener.
type Sink struct {
	saver  Saver
	opener Opener
}

// New combines saver and opener into a sink for export.
func New(saver Saver, opener Opener) *Sink {
	return &Sink{saver: saver, opener: opener}
}

// Save implements export.Sink.
func (s *Sink) Save(data []byte, filename string) error {
	return s.saver.Save(data, filename)
}

// OpenExternal implements export.Sink.
func (s *Sink) OpenExternal(url string) error {
	return s.opener.Open(url)
}
