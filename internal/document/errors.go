package document

import "fmt"

// EncodeError represents a failure while building the DOCX package.
type EncodeError struct {
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// DecodeError represents a failure while reading an uploaded DOCX file.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// UploadError represents an input validation failure for an uploaded file.
type UploadError struct {
	Message     string
	ContentType string
}

func (e *UploadError) Error() string {
	if e.ContentType != "" {
		return fmt.Sprintf("upload error: %s (got %s)", e.Message, e.ContentType)
	}
	return fmt.Sprintf("upload error: %s", e.Message)
}
