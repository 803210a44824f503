package services

import (
	"fmt"
	"mime"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxPictureNameLen = 64

// pictureKey builds "pictures/YYYY/MM/DD/<user-hex>/<unix-nano>-<name><ext>".
func pictureKey(filename, mimeType string, userID uuid.UUID, now time.Time) string {
	base, ext := sanitizeFileName(filename)
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	if ext == "" {
		ext = ".img"
	}

	return fmt.Sprintf(
		"pictures/%04d/%02d/%02d/%s/%d-%s%s",
		now.Year(), int(now.Month()), now.Day(),
		strings.ReplaceAll(userID.String(), "-", ""),
		now.UnixNano(),
		base, ext,
	)
}

// sanitizeFileName folds the client-supplied name down to [a-z0-9-] plus a
// lower-cased extension. Directory parts are dropped.
func sanitizeFileName(original string) (base, ext string) {
	s := strings.TrimSpace(strings.ReplaceAll(original, "\\", "/"))
	s = path.Base(s)
	if s == "." || s == "/" || s == ".." {
		s = ""
	}

	// strip accents: "façade" -> "facade"
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext = strings.ToLower(path.Ext(s))
	if !isSafeExt(ext) {
		ext = ""
	}
	s = strings.TrimSuffix(s, path.Ext(s))

	var b strings.Builder
	b.Grow(len(s))
	prevDash := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-', r == '_', r == '.', unicode.IsSpace(r):
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}

	base = strings.Trim(b.String(), "-")
	if len(base) > maxPictureNameLen {
		base = strings.TrimRight(base[:maxPictureNameLen], "-")
	}
	if base == "" {
		base = "picture"
	}

	return base, ext
}

func isSafeExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 6 {
		return false
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
