package texture

// FormatInfo describes one image codec the texture loader accepts.
type FormatInfo struct {
	Name       string
	Extensions []string
	Decoder    string
}

// Return the list of codecs registered with the texture loader.
func SupportedFormats() []FormatInfo {
	return []FormatInfo{
		{Name: "png", Extensions: []string{".png"}, Decoder: "image/png"},
		{Name: "jpeg", Extensions: []string{".jpg", ".jpeg"}, Decoder: "image/jpeg"},
		{Name: "gif", Extensions: []string{".gif"}, Decoder: "image/gif"},
		{Name: "bmp", Extensions: []string{".bmp"}, Decoder: "golang.org/x/image/bmp"},
		{Name: "tiff", Extensions: []string{".tif", ".tiff"}, Decoder: "golang.org/x/image/tiff"},
		{Name: "webp", Extensions: []string{".webp"}, Decoder: "golang.org/x/image/webp"},
	}
}
