package tableschema

import "fmt"

// Check validates a JSON document without stopping at the first problem. It
// returns Issues listing every problem found, or nil when the document would
// parse cleanly with the same options. Invalid options and undecodable input
// are reported as errors of their own kind.
func Check(data []byte, opts ...Options) error {
	opt := resolveOptions(opts)
	if err := opt.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	doc, err := decodeDocument(data, opt)
	if err != nil {
		return err
	}
	r := &reader{s: New(opt), collect: true}
	_ = r.read(doc)
	if len(r.issues) == 0 {
		return nil
	}
	return r.issues
}
