package types

// Upload carries a pre-validated image file handed to the lifecycle controller.
// Validation (size, format) happens before the file reaches the controller.
type Upload struct {
	FileName string
	Data     []byte
}

// TranslateOptions are the three settings sent alongside the image.
type TranslateOptions struct {
	Currency      string
	Model         string
	IncludeImages bool
}
