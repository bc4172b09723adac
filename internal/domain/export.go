package domain

// ExportDescriptor tells a client everything it needs to produce and publish
// the recap image for a wrap: the canonical shareable URL and the
// deterministic file name for the captured PNG. Pixel capture itself happens
// client-side; the server never renders images.
type ExportDescriptor struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}
