package security

import (
	"bytes"
	"path/filepath"
	"strings"
)

// MaxResumeSize is the upper bound for an uploaded resume.
const MaxResumeSize = 5 * 1024 * 1024 // 5 MB

// pdfMagic is the %PDF file signature.
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

// FileValidationResult contains the result of resume validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// ValidateResume performs 4-layer validation on an uploaded resume:
// 1. Size bound (<= 5 MB)
// 2. Extension must be .pdf
// 3. Magic byte verification (content starts with %PDF)
// 4. Detected MIME type must be exactly application/pdf
// application/octet-stream is rejected: it allows arbitrary binary uploads.
func ValidateResume(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	if len(data) == 0 {
		result.Error = "file is empty"
		return result
	}
	if len(data) > MaxResumeSize {
		result.Error = "file exceeds the 5 MB size limit"
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	result.Extension = ext
	if ext != ".pdf" {
		result.Error = "resume must be a PDF file"
		return result
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		result.Error = "file content does not match extension (potential file spoofing detected)"
		return result
	}

	// DetectContentType reports "application/pdf; charset=..." variants for
	// some inputs; compare the media type only.
	mime := strings.TrimSpace(strings.SplitN(detectedMIME, ";", 2)[0])
	if mime != "application/pdf" {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}
